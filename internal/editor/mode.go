package editor

import "fmt"

// Mode is the top-level application mode. The set of variants is closed:
// GameMode, EditorMode and MenuMode.
type Mode interface {
	isMode()
	String() string
}

// GameMode shows the scene without editing tools.
type GameMode struct{}

// MenuMode shows the scene behind a menu.
type MenuMode struct{}

// EditorMode enables the editing tools.
type EditorMode struct {
	State EditorState
	Sub   EditorSubMode
}

// EditorState is the per-frame state of the editor mode.
type EditorState struct {
	// FreeCamera is true while pointer motion drives the camera.
	FreeCamera bool
}

func (GameMode) isMode()   {}
func (MenuMode) isMode()   {}
func (EditorMode) isMode() {}

func (GameMode) String() string { return "game" }
func (MenuMode) String() string { return "menu" }

func (m EditorMode) String() string {
	return "editor/" + m.Sub.String()
}

// EditorSubMode selects what the editor edits: GeneralMode or TerrainMode.
type EditorSubMode interface {
	isSubMode()
	String() string
}

// GeneralMode is camera navigation only.
type GeneralMode struct{}

// TerrainMode edits the terrain with a tool.
type TerrainMode struct {
	Tool TerrainTool
}

func (GeneralMode) isSubMode() {}
func (TerrainMode) isSubMode() {}

func (GeneralMode) String() string { return "general" }

func (m TerrainMode) String() string { return "terrain/" + m.Tool.String() }

// TerrainTool is the active terrain tool. Only ToolSculpt changes heights;
// the painting tools are selectable but have no effect yet.
type TerrainTool int

const (
	ToolSculpt TerrainTool = iota
	ToolPaintTextures
	ToolPaintTrees
	ToolPaintVegetation
)

var toolNames = [...]string{
	ToolSculpt:          "sculpt",
	ToolPaintTextures:   "paint-textures",
	ToolPaintTrees:      "paint-trees",
	ToolPaintVegetation: "paint-vegetation",
}

func (t TerrainTool) String() string {
	if t >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("TerrainTool(%d)", int(t))
}

// DefaultMode is the editor with the sculpt tool selected.
func DefaultMode() Mode {
	return EditorMode{Sub: TerrainMode{Tool: ToolSculpt}}
}

// ParseMode converts a configuration name into a start mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "editor":
		return DefaultMode(), nil
	case "game":
		return GameMode{}, nil
	case "menu":
		return MenuMode{}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", name)
}
