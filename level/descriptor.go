package level

// The descriptors below are opaque resource handles: they say which asset a
// field uses and how to present it, never the asset bytes themselves.

// Rendering holds the bitmap rendering attributes shared by sprites and
// animations.
type Rendering struct {
	Width   uint32  `json:"width"`
	Height  uint32  `json:"height"`
	Mirror  bool    `json:"mirror,omitempty"`
	Flip    bool    `json:"flip,omitempty"`
	Opacity float64 `json:"opacity"`
	Red     float64 `json:"red"`
	Green   float64 `json:"green"`
	Blue    float64 `json:"blue"`
	Angle   float64 `json:"angle,omitempty"`
}

// DefaultRendering is fully opaque, untinted and unrotated.
func DefaultRendering() Rendering {
	return Rendering{Opacity: 1, Red: 1, Green: 1, Blue: 1}
}

// Rect is a pixel rectangle inside an image.
type Rect struct {
	Left   uint32 `json:"left"`
	Bottom uint32 `json:"bottom"`
	Right  uint32 `json:"right"`
	Top    uint32 `json:"top"`
}

// Sprite references a clip of an image.
type Sprite struct {
	Image      string    `json:"image"`
	Left       uint32    `json:"left"`
	Top        uint32    `json:"top"`
	ClipWidth  uint32    `json:"clip_width"`
	ClipHeight uint32    `json:"clip_height"`
	Opaque     Rect      `json:"opaque"`
	Rendering  Rendering `json:"rendering"`
}

// Frame is one sprite of an animation shown for Duration seconds.
type Frame struct {
	Duration float64 `json:"duration"`
	Sprite   Sprite  `json:"sprite"`
}

// Animation content kinds.
const (
	AnimationInline = "animation"
	AnimationFile   = "file"
)

// Animation is either an inline list of frames or a reference to an
// animation file, plus rendering attributes.
type Animation struct {
	Content    string    `json:"content"`
	Path       string    `json:"path,omitempty"`
	Frames     []Frame   `json:"frames,omitempty"`
	Loops      uint32    `json:"loops,omitempty"`
	LoopBack   bool      `json:"loop_back,omitempty"`
	FirstIndex uint32    `json:"first_index,omitempty"`
	LastIndex  uint32    `json:"last_index,omitempty"`
	Rendering  Rendering `json:"rendering"`
}

// Sample references a sound with its play effect.
type Sample struct {
	Path   string  `json:"path"`
	Loops  int32   `json:"loops"`
	Volume float64 `json:"volume"`
}

// Font references a font file at a given size.
type Font struct {
	Path string  `json:"path"`
	Size float64 `json:"size"`
}

// Color is an RGBA color with intensities in [0, 1].
type Color struct {
	Opacity float64 `json:"opacity"`
	Red     float64 `json:"red"`
	Green   float64 `json:"green"`
	Blue    float64 `json:"blue"`
}
