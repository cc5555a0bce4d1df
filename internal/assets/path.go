// Package assets fetches named 3D scene assets and loads them into the scene asynchronously.
package assets

import (
	"fmt"
	"strings"
)

// SceneFormat is the interchange format every asset is stored in.
const SceneFormat = "gltf"

// SceneFile is the file name of an asset's scene inside its directory.
const SceneFile = "scene." + SceneFormat

// Path returns the location of the named asset under root: <root>/<name>/scene.gltf.
func Path(root, name string) string {
	root = strings.TrimSuffix(root, "/")
	if root == "" {
		root = "."
	}
	return root + "/" + name + "/" + SceneFile
}

// ValidName rejects names that are empty or would leave the models directory.
func ValidName(name string) error {
	if name == "" {
		return fmt.Errorf("asset name is empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid asset name %q", name)
	}
	return nil
}
