package armature

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// TextureRegion describes a named sub-rectangle of the atlas image.
// Value type, stored directly on Node.
type TextureRegion struct {
	Name      string
	X, Y      int  // top-left corner within the atlas image
	Width     int  // packed width (may differ from OriginalW if trimmed)
	Height    int  // packed height (may differ from OriginalH if trimmed)
	OriginalW int  // untrimmed width as authored
	OriginalH int  // untrimmed height as authored
	OffsetX   int  // frameX trim offset from the packer
	OffsetY   int  // frameY trim offset from the packer
	Rotated   bool // stored 90 degrees clockwise in the atlas
}

// Atlas maps region names to rectangles of a single atlas image.
// Read-only after LoadAtlas returns.
type Atlas struct {
	Width     int
	Height    int
	ImagePath string
	regions   map[string]TextureRegion
}

// Region returns the TextureRegion for the given name, or ErrUnknownRegion.
func (a *Atlas) Region(name string) (TextureRegion, error) {
	if r, ok := a.regions[name]; ok {
		return r, nil
	}
	return TextureRegion{}, errors.Wrapf(ErrUnknownRegion, "region %q", name)
}

// Has reports whether the atlas contains a region called name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Len returns the number of regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Names returns all region names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- JSON structure types ---

type jsonSubTexture struct {
	Name        string `json:"name"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	FrameX      int    `json:"frameX"`
	FrameY      int    `json:"frameY"`
	FrameWidth  int    `json:"frameWidth"`
	FrameHeight int    `json:"frameHeight"`
	Rotated     bool   `json:"rotated"`
}

type jsonAtlas struct {
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	ImagePath  string            `json:"imagePath"`
	SubTexture *[]jsonSubTexture `json:"SubTexture"`
}

// LoadAtlas parses a DragonBones texture atlas manifest:
//
//	{"width": 256, "height": 256, "imagePath": "x_tex.png",
//	 "SubTexture": [{"name": "head", "x": 0, "y": 0, "width": 32, "height": 32}]}
//
// Trim fields (frameX, frameY, frameWidth, frameHeight) and rotated are
// optional. No image is decoded.
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	var raw jsonAtlas
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, errors.Wrapf(ErrParse, "atlas JSON: %v", err)
	}
	if raw.SubTexture == nil {
		return nil, parseErrorf("atlas JSON has no \"SubTexture\" array")
	}

	atlas := &Atlas{
		Width:     raw.Width,
		Height:    raw.Height,
		ImagePath: raw.ImagePath,
		regions:   make(map[string]TextureRegion, len(*raw.SubTexture)),
	}
	for i, st := range *raw.SubTexture {
		if st.Name == "" {
			return nil, parseErrorf("SubTexture[%d]: missing name", i)
		}
		if st.Width < 0 || st.Height < 0 {
			return nil, parseErrorf("SubTexture[%d] %q: negative size %dx%d", i, st.Name, st.Width, st.Height)
		}
		if _, dup := atlas.regions[st.Name]; dup {
			return nil, parseErrorf("SubTexture[%d]: duplicate region %q", i, st.Name)
		}
		atlas.regions[st.Name] = subTextureToRegion(st)
	}
	return atlas, nil
}

func subTextureToRegion(st jsonSubTexture) TextureRegion {
	r := TextureRegion{
		Name:      st.Name,
		X:         st.X,
		Y:         st.Y,
		Width:     st.Width,
		Height:    st.Height,
		OriginalW: st.Width,
		OriginalH: st.Height,
		Rotated:   st.Rotated,
	}
	// DragonBones stores the trim as a negative frame offset into the
	// untrimmed frame.
	if st.FrameWidth > 0 && st.FrameHeight > 0 {
		r.OriginalW = st.FrameWidth
		r.OriginalH = st.FrameHeight
		r.OffsetX = -st.FrameX
		r.OffsetY = -st.FrameY
	}
	return r
}
