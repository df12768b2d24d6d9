package world

import "github.com/phanxgames/voxfolio"

// Ambient motion parameters.
const (
	fishBobAmplitude  = 0.1
	fishBobFrequency  = 0.003
	fishSpinSpeed     = 0.01
	cloudBobAmplitude = 0.5
	cloudBobFrequency = 0.0005
)

// animate registers the ambient rules: fish bob and turn in place, clouds
// drift up and down, and landmarks scale up under the pointer.
func animate(scene *voxfolio.Scene, w *World) {
	reg := scene.Animations()
	for _, f := range w.Fish {
		reg.Bob(f, fishBobAmplitude, fishBobFrequency)
		reg.Spin(f, fishSpinSpeed)
	}
	for _, c := range w.Clouds {
		reg.Bob(c, cloudBobAmplitude, cloudBobFrequency)
	}
	for _, n := range w.Hoverable {
		reg.AddHover(n)
	}
	scene.OnPointerEnter(func(ctx voxfolio.PointerContext) {
		reg.Highlight(ctx.Node)
	})
	scene.OnPointerLeave(func(ctx voxfolio.PointerContext) {
		reg.Unhighlight(ctx.Node)
	})
}
