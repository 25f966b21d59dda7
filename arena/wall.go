package arena

// WallLocation identifies one of the four boundary walls.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// Walls lists every wall in spawn order.
func Walls() []WallLocation {
	return []WallLocation{WallLeft, WallRight, WallBottom, WallTop}
}

func (w WallLocation) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// Position returns the centre of the wall. Side walls sit on the x bounds at
// y=0, top and bottom walls on the y bounds at x=0.
func (w WallLocation) Position(cfg *Config) Vec2 {
	switch w {
	case WallLeft:
		return Vec2{X: cfg.Bounds.Left}
	case WallRight:
		return Vec2{X: cfg.Bounds.Right}
	case WallBottom:
		return Vec2{Y: cfg.Bounds.Bottom}
	case WallTop:
		return Vec2{Y: cfg.Bounds.Top}
	default:
		panic("unknown wall location")
	}
}

// Size returns the full extent of the wall. Each wall is one thickness longer
// than the span it covers so the corners overlap instead of leaving gaps.
// Malformed bounds panic; run Config.Validate at startup to fail cleanly.
func (w WallLocation) Size(cfg *Config) Vec2 {
	arenaHeight := cfg.ArenaHeight()
	arenaWidth := cfg.ArenaWidth()
	if arenaHeight <= 0 {
		panic("arena height must be positive")
	}
	if arenaWidth <= 0 {
		panic("arena width must be positive")
	}

	switch w {
	case WallLeft, WallRight:
		return Vec2{X: cfg.WallThickness, Y: arenaHeight + cfg.WallThickness}
	case WallBottom, WallTop:
		return Vec2{X: arenaWidth + cfg.WallThickness, Y: cfg.WallThickness}
	default:
		panic("unknown wall location")
	}
}

// Rect returns the wall as a box.
func (w WallLocation) Rect(cfg *Config) Rect {
	return Rect{Center: w.Position(cfg), Size: w.Size(cfg)}
}
