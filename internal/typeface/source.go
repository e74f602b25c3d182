package typeface

// Source hands out the font to render with.
type Source interface {
	Current() (*Font, error)
}

type static struct {
	font *Font
}

// Static returns a Source that always yields f.
func Static(f *Font) Source {
	return &static{font: f}
}

func (that *static) Current() (*Font, error) {
	return that.font, nil
}
