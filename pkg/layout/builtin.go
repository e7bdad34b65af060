package layout

const (
	TitleContent      = "title-content"
	TitleOnly         = "title-only"
	ContentOnly       = "content-only"
	TitleContentImage = "title-content-image"
	TitleTwoContent   = "title-two-content"
	TitleContentInset = "title-content-inset-image"
	ImageOnly         = "image-only"
)

const (
	titlePrompt         = "Click to add title"
	contentPrompt       = "Click to add content"
	imagePrompt         = "Click to add image"
	defaultTitleSize    = 32
	defaultContentSize  = 18
	coverTitleSize      = 44
	defaultContentLines = 1.5
)

func titleFormat(size float64, align string) TextFormat {
	return TextFormat{
		FontSize:  Num(size),
		Bold:      Bool(true),
		TextAlign: align,
	}
}

func contentFormat() TextFormat {
	return TextFormat{
		FontSize:   Num(defaultContentSize),
		LineHeight: Num(defaultContentLines),
		TextAlign:  "left",
	}
}

func title(g GridRegion) Placeholder {
	return Placeholder{Type: PlaceholderTitle, Grid: g, Format: titleFormat(defaultTitleSize, "left"), Placeholder: titlePrompt}
}

func content(g GridRegion) Placeholder {
	return Placeholder{Type: PlaceholderContent, Grid: g, Format: contentFormat(), Placeholder: contentPrompt}
}

func image(g GridRegion) Placeholder {
	return Placeholder{Type: PlaceholderImage, Grid: g, Placeholder: imagePrompt}
}

// builtinLayouts is the static table loaded at startup.
func builtinLayouts() []Layout {
	return []Layout{
		{
			Id:          TitleContent,
			Name:        "Title and Content",
			Description: "Heading across the top row with a content area below",
			IsDefault:   true,
			IsPublic:    true,
			Elements: []Placeholder{
				title(GridRegion{ColumnStart: 1, ColumnEnd: 13, RowStart: 1, RowEnd: 2}),
				content(GridRegion{ColumnStart: 1, ColumnEnd: 13, RowStart: 2, RowEnd: 7}),
			},
		},
		{
			Id:          TitleOnly,
			Name:        "Title Only",
			Description: "A single centered heading",
			IsPublic:    true,
			Elements: []Placeholder{
				{
					Type:        PlaceholderTitle,
					Grid:        GridRegion{ColumnStart: 2, ColumnEnd: 12, RowStart: 3, RowEnd: 5},
					Format:      titleFormat(coverTitleSize, "center"),
					Placeholder: titlePrompt,
				},
			},
		},
		{
			Id:          ContentOnly,
			Name:        "Content Only",
			Description: "Full canvas content area",
			IsPublic:    true,
			Elements: []Placeholder{
				content(GridRegion{ColumnStart: 1, ColumnEnd: 13, RowStart: 1, RowEnd: 7}),
			},
		},
		{
			Id:          TitleContentImage,
			Name:        "Title, Content and Image",
			Description: "Heading with content on the left and an image on the right",
			IsPublic:    true,
			Elements: []Placeholder{
				title(GridRegion{ColumnStart: 1, ColumnEnd: 13, RowStart: 1, RowEnd: 2}),
				content(GridRegion{ColumnStart: 1, ColumnEnd: 8, RowStart: 2, RowEnd: 7}),
				image(GridRegion{ColumnStart: 8, ColumnEnd: 13, RowStart: 2, RowEnd: 7}),
			},
		},
		{
			Id:          TitleTwoContent,
			Name:        "Title and Two Columns",
			Description: "Heading with two side by side content areas",
			IsPublic:    true,
			Elements: []Placeholder{
				title(GridRegion{ColumnStart: 1, ColumnEnd: 13, RowStart: 1, RowEnd: 2}),
				content(GridRegion{ColumnStart: 1, ColumnEnd: 7, RowStart: 2, RowEnd: 7}),
				content(GridRegion{ColumnStart: 7, ColumnEnd: 13, RowStart: 2, RowEnd: 7}),
			},
		},
		{
			Id:          TitleContentInset,
			Name:        "Title and Content with Inset Image",
			Description: "Image placed inside the top right corner of the content area",
			IsPublic:    true,
			Elements: []Placeholder{
				title(GridRegion{ColumnStart: 1, ColumnEnd: 13, RowStart: 1, RowEnd: 2}),
				content(GridRegion{ColumnStart: 1, ColumnEnd: 13, RowStart: 2, RowEnd: 7}),
				image(GridRegion{ColumnStart: 9, ColumnEnd: 13, RowStart: 2, RowEnd: 5}),
			},
		},
		{
			Id:          ImageOnly,
			Name:        "Image Only",
			Description: "Full canvas image",
			IsPublic:    true,
			Elements: []Placeholder{
				image(GridRegion{ColumnStart: 1, ColumnEnd: 13, RowStart: 1, RowEnd: 7}),
			},
		},
	}
}
