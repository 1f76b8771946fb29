package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/config"
	"github.com/Faultbox/trefoil/internal/engine/camera"
	"github.com/Faultbox/trefoil/internal/engine/shadow"
	"github.com/Faultbox/trefoil/internal/engine/terrain"
)

func vec3(v config.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// newTerrain builds the flat starting terrain from the terrain, brush and
// picking sections.
func newTerrain(cfg *config.Config) (*terrain.Terrain, error) {
	tc := cfg.Terrain
	field, err := terrain.NewHeightField(tc.SamplesX, tc.SamplesZ, tc.Spacing, mgl32.Vec2{tc.OriginX, tc.OriginZ})
	if err != nil {
		return nil, fmt.Errorf("height-field: %w", err)
	}

	bc := cfg.Brush
	brush := terrain.NewBrush(bc.Size, bc.MinSize, bc.MaxSize, bc.Rate, bc.ScrollStep)
	return terrain.New(field, brush, marchConfig(cfg.Picking, tc.Spacing)), nil
}

// marchConfig fills unset picking values from the terrain spacing.
func marchConfig(pc config.PickingConfig, spacing float32) terrain.MarchConfig {
	m := terrain.DefaultMarchConfig(spacing)
	if pc.Step > 0 {
		m.Step = pc.Step
	}
	if pc.Tolerance > 0 {
		m.Tolerance = pc.Tolerance
	}
	if pc.MaxSteps > 0 {
		m.MaxSteps = pc.MaxSteps
	}
	if pc.RefineIterations > 0 {
		m.RefineIterations = pc.RefineIterations
	}
	return m
}

func cameraParams(cc config.CameraConfig, width, height int) camera.Params {
	return camera.Params{
		Position:        vec3(cc.StartPosition),
		Target:          vec3(cc.StartTarget),
		FovY:            mgl32.DegToRad(cc.FovDegrees),
		Near:            cc.Near,
		Far:             cc.Far,
		Speed:           cc.Speed,
		BoostMultiplier: cc.BoostMultiplier,
		Sensitivity:     cc.Sensitivity,
		PitchMargin:     cc.PitchMargin,
		Width:           float32(width),
		Height:          float32(height),
	}
}

// sunFor returns the configured sun, refitted around the terrain bounds
// when fit_to_terrain is set. Zero values keep the default sun's.
func sunFor(sc config.SunConfig, t *terrain.Terrain) shadow.Sun {
	sun := shadow.DefaultSun()
	if p := vec3(sc.Position); p != (mgl32.Vec3{}) {
		sun.Position = p
	}
	if p := vec3(sc.Target); p != (mgl32.Vec3{}) {
		sun.Target = p
	}
	if sc.HalfExtent > 0 {
		sun.HalfExtent = sc.HalfExtent
	}
	if sc.Near > 0 {
		sun.Near = sc.Near
	}
	if sc.Far > 0 {
		sun.Far = sc.Far
	}
	if sc.FitToTerrain {
		return shadow.FitToBounds(sun.Direction(), t.Field.Bounds())
	}
	return sun
}
