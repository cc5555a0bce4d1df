package shading

import "github.com/chewxy/math32"

// Evaluate computes the shaded color of a surface point the way the fragment shader does:
// normal and position are in eye space, so the viewer sits at the origin. The result is
// clamped to [0, 1] like a color attachment and alpha is always 1.
func Evaluate(p Params, normal, position [3]float32) [4]float32 {
	mc := p.Tint()
	n := normalize(normal)
	l := normalize(sub(p.LightPosition, position))
	e := normalize([3]float32{-position[0], -position[1], -position[2]})
	h := normalize(add(l, e))

	ln := dot(l, n)
	kd := math32.Max(ln, 0)
	ks := math32.Pow(math32.Max(dot(n, h), 0), p.Shininess)
	if ln < 0 {
		ks = 0
	}

	var out [4]float32
	for i := 0; i < 3; i++ {
		ambient := p.Ambient[i] * mc[i]
		diffuse := kd * p.Diffuse[i] * mc[i]
		specular := ks * p.Specular[i]
		out[i] = clamp01(ambient + diffuse + specular)
	}
	out[3] = 1
	return out
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func add(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
