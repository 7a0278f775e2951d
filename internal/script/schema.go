package script

import "github.com/hashicorp/hcl/v2"

// SettingsBlock overrides the defaults of a new composition. Zero-valued
// fields keep their default.
type SettingsBlock struct {
	Width       int     `hcl:"width,optional"`
	Height      int     `hcl:"height,optional"`
	FrameRate   float64 `hcl:"frame_rate,optional"`
	Duration    float64 `hcl:"duration,optional"`
	PixelAspect float64 `hcl:"pixel_aspect,optional"`
	ColorSpace  string  `hcl:"color_space,optional"`
}

// ParamsBlock carries a node's raw parameter assignments. Names and values
// are checked against the catalog declaration when the document is built.
type ParamsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// NodeBlock declares one node. The name label doubles as the handle that
// connect endpoints reference.
type NodeBlock struct {
	TypeTag string       `hcl:"type,label"`
	Name    string       `hcl:"name,label"`
	Params  *ParamsBlock `hcl:"params,block"`
	Enabled *bool        `hcl:"enabled,optional"`
}

// ConnectBlock wires two "node.port" endpoints together.
type ConnectBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// Document is one composition block decoded from a script file.
type Document struct {
	Name     string          `hcl:"name,label"`
	Settings *SettingsBlock  `hcl:"settings,block"`
	Nodes    []*NodeBlock    `hcl:"node,block"`
	Connects []*ConnectBlock `hcl:"connect,block"`

	// SourceFile is the script the block came from, set by the loader.
	SourceFile string
}

// fileRoot decodes all top-level blocks of one script file.
type fileRoot struct {
	Compositions []*Document `hcl:"composition,block"`
	Remain       hcl.Body    `hcl:",remain"`
}
