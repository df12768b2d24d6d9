package world

import "math"

// Fixed layout of the map. Cells cover x and z in [-Size, Size].
const (
	Size       = 20
	WaterLevel = 0

	HouseX = -Size + 5 // -15
	HouseZ = Size - 9  // 11

	// The path runs from the house door down to the bridge.
	PathEndX = HouseX + 3
	PathEndZ = -15

	RiverStartX = -Size
	RiverEndX   = Size
	RiverStartZ = -5.0
	RiverEndZ   = -15.0

	HillX      = Size - 5
	HillZ      = Size - 5
	HillRadius = 15
	HillTop    = 6

	BridgeX      = PathEndX - 1
	BridgeLength = 8

	ChestX = -3
	ChestZ = 5
)

// BridgeZ is where the river centerline crosses the path.
var BridgeZ = RiverZ(PathEndX)

func riverT(x float64) float64 {
	return (x - RiverStartX) / (RiverEndX - RiverStartX)
}

// RiverZ returns the z of the river centerline at x. Terrain, bush and fish
// placement all read the curve from here.
func RiverZ(x float64) float64 {
	t := riverT(x)
	return RiverStartZ + (RiverEndZ-RiverStartZ)*t + math.Sin(t*math.Pi*0.6)*4
}

// RiverWidth returns the half width of the river band at x.
func RiverWidth(x float64) float64 {
	return 3.5 + math.Sin(riverT(x)*math.Pi*0.8)
}

// RiverDistance returns how far z lies from the centerline at x, along z.
func RiverDistance(x, z float64) float64 {
	return math.Abs(z - RiverZ(x))
}

// InRiver reports whether (x, z) is inside the river band.
func InRiver(x, z float64) bool {
	return x >= RiverStartX && x <= RiverEndX && RiverDistance(x, z) < RiverWidth(x)
}

// OnPath reports whether the cell belongs to the straight gravel path that
// runs from the house to one block short of the bridge.
func OnPath(x, z float64) bool {
	return math.Abs(x-PathEndX) <= 1 && z <= HouseZ && z >= BridgeZ+1
}

// nearPath reports whether (x, z) lies within width (plus a little edge
// noise) of the path segment from the house to PathEndZ.
func nearPath(x, z, width float64) bool {
	ax, az := float64(PathEndX), float64(HouseZ)
	bx, bz := float64(PathEndX), float64(PathEndZ)
	cx, cz := bx-ax, bz-az
	param := ((x-ax)*cx + (z-az)*cz) / (cx*cx + cz*cz)
	px, pz := ax+param*cx, az+param*cz
	switch {
	case param < 0:
		px, pz = ax, az
	case param > 1:
		px, pz = bx, bz
	}
	noise := math.Sin(x*0.5) * math.Cos(z*0.5) * 0.3
	return math.Hypot(x-px, z-pz) < width+noise
}

// pathLineDistance is the distance from (x, z) to the infinite line through
// the path.
func pathLineDistance(x, _ float64) float64 {
	return math.Abs(x - PathEndX)
}

// hillExcluded reports whether the hill is kept off the cell so the house,
// garden and mailbox sit on flat ground.
func hillExcluded(x, z float64) bool {
	return x > -Size+3 && x < -Size+15 && z > Size-15
}

// columnHeight returns the surface height of the (x, z) column and whether
// the column is river. River heights are fractional and at most -1.
func columnHeight(x, z float64) (float64, bool) {
	y := 0.0
	d := math.Hypot(x-HillX, z-HillZ)
	if d < HillRadius && !hillExcluded(x, z) {
		if d < 6 {
			y = HillTop
		} else {
			y = math.Max(0, math.Floor(HillTop*(1-(d-6)/9)))
			y += math.Sin(x*0.5) * math.Cos(z*0.5) * 0.5
			y = math.Max(0, math.Floor(y))
		}
	}
	if InRiver(x, z) {
		depth := math.Sin(x*0.3) * math.Cos(z*0.3) * 0.5
		edge := 1 - RiverDistance(x, z)/RiverWidth(x)
		return math.Min(-1, -1-depth-edge), true
	}
	return y, false
}
