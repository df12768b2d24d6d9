package world

import "github.com/phanxgames/voxfolio"

// SkyColor fills the background and is the color distant faces fade to.
var SkyColor = voxfolio.RGB(0x91BDFF)

// ApplyAtmosphere sets the sky, fog and sunlight used by the map.
func ApplyAtmosphere(scene *voxfolio.Scene) {
	scene.ClearColor = SkyColor
	scene.Fog = voxfolio.Fog{Enabled: true, Color: SkyColor, Near: 20, Far: 50}
	scene.Light = voxfolio.Lighting{
		Ambient: 0.8,
		Sun:     0.6,
		SunDir:  voxfolio.Vec3{X: 50, Y: 100, Z: 50}.Normalize(),
	}
}
