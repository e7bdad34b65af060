package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"lms-presentation-be/pkg/grid"
	"lms-presentation-be/pkg/layout"
	"lms-presentation-be/pkg/transform"
)

// Font sizes in hundredths of a point, the unit DrawingML uses for sz.
const (
	coverTitleSize    = 4400
	coverSubtitleSize = 2400
	slideTitleSize    = 3200
	slideBodySize     = 1800
)

const (
	boxMarginEMU    = 91440 // 0.1in
	bulletIndentEMU = 285750
)

var (
	coverTitleRegion    = layout.GridRegion{ColumnStart: 2, ColumnEnd: 12, RowStart: 2, RowEnd: 4}
	coverSubtitleRegion = layout.GridRegion{ColumnStart: 2, ColumnEnd: 12, RowStart: 4, RowEnd: 5}
)

// PptxWriter writes Office Open XML presentations on a fixed canvas.
// The first slide is a cover built from the metadata; every input slide follows.
type PptxWriter struct {
	canvas      grid.Canvas
	application string
}

func NewPptxWriter(canvas grid.Canvas) *PptxWriter {
	return &PptxWriter{
		canvas:      canvas,
		application: "lms-presentation-be",
	}
}

type paragraph struct {
	text   string
	level  int
	bullet bool
	align  string
	size   int
	bold   bool
	italic bool
	color  string
	font   string
}

type part struct {
	name string
	body string
}

type textBox struct {
	name       string
	x, y, w, h int64
	anchor     string
	paragraphs []paragraph
}

func (w *PptxWriter) WriteDeck(slides []transform.SlideOutput, meta Metadata) ([]byte, error) {
	rendered := make([]string, 0, len(slides)+1)
	rendered = append(rendered, w.renderSlide(w.coverBoxes(meta), ""))

	for i, s := range slides {
		boxes, err := w.contentBoxes(s)
		if err != nil {
			return nil, fmt.Errorf("%w: slide %d: %v", ErrExportFailure, i+1, err)
		}
		rendered = append(rendered, w.renderSlide(boxes, s.BackgroundColor))
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	parts := []part{
		{"[Content_Types].xml", contentTypesXML(len(rendered))},
		{"_rels/.rels", rootRelsXML()},
		{"docProps/core.xml", coreXML(meta)},
		{"docProps/app.xml", w.appXML(len(rendered))},
		{"ppt/presentation.xml", w.presentationXML(len(rendered))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(rendered))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i, body := range rendered {
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), body},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRelsXML},
		)
	}

	for _, pt := range parts {
		header := &zip.FileHeader{Name: pt.name, Method: zip.Deflate}
		if !meta.CreatedAt.IsZero() {
			header.Modified = meta.CreatedAt
		}
		f, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrExportFailure, pt.name, err)
		}
		if _, err := f.Write([]byte(pt.body)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrExportFailure, pt.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailure, err)
	}

	return buf.Bytes(), nil
}

func (w *PptxWriter) coverBoxes(meta Metadata) []textBox {
	title := w.place("Title", coverTitleRegion)
	title.anchor = "b"
	title.paragraphs = []paragraph{{text: meta.Title, align: "ctr", size: coverTitleSize, bold: true}}

	subtitle := w.place("Subtitle", coverSubtitleRegion)
	subtitle.anchor = "t"
	subtitle.paragraphs = []paragraph{{text: meta.Subtitle, align: "ctr", size: coverSubtitleSize}}

	return []textBox{title, subtitle}
}

// contentBoxes lays out one text box per title or content slot, at the slot's grid
// region. Image slots are not rendered.
func (w *PptxWriter) contentBoxes(s transform.SlideOutput) ([]textBox, error) {
	boxes := make([]textBox, 0, len(s.Elements))

	for i, el := range s.Elements {
		if i >= len(s.Layout.Elements) {
			break
		}
		region := s.Layout.Elements[i].Grid

		switch el.Type {
		case layout.PlaceholderTitle:
			text := el.Value.Text()
			if !utf8.ValidString(text) {
				return nil, fmt.Errorf("title is not valid UTF-8")
			}
			box := w.place(fmt.Sprintf("Title %d", i+1), region)
			box.anchor = "ctr"
			p := styled(el.Format, paragraph{text: text, size: slideTitleSize, bold: true})
			box.paragraphs = []paragraph{p}
			boxes = append(boxes, box)

		case layout.PlaceholderContent:
			lines := FlattenValue(el.Value)
			box := w.place(fmt.Sprintf("Content %d", i+1), region)
			box.anchor = "t"
			for _, l := range lines {
				if !utf8.ValidString(l.Text) {
					return nil, fmt.Errorf("content is not valid UTF-8")
				}
				box.paragraphs = append(box.paragraphs,
					styled(el.Format, paragraph{text: l.Text, level: l.Level, bullet: true, size: slideBodySize}))
			}
			boxes = append(boxes, box)
		}
	}

	return boxes, nil
}

// styled applies the colour, font family, alignment and emphasis of a resolved slot
// format. Sizes stay fixed.
func styled(f layout.TextFormat, p paragraph) paragraph {
	if c, ok := hexColor(f.Color); ok {
		p.color = c
	}
	p.font = f.FontFamily
	if a := alignment(f.TextAlign); a != "" {
		p.align = a
	}
	if f.Bold != nil {
		p.bold = p.bold || *f.Bold
	}
	if f.Italic != nil {
		p.italic = *f.Italic
	}
	return p
}

func (w *PptxWriter) place(name string, region layout.GridRegion) textBox {
	margin := boxMarginEMU / w.canvas.Unit.EMUPer()
	rect := grid.ResolveBounds(region).ToAbsolute(w.canvas).Inset(margin)
	x, y, cx, cy := rect.EMU(w.canvas.Unit)
	return textBox{name: name, x: x, y: y, w: cx, h: cy}
}

func (w *PptxWriter) renderSlide(boxes []textBox, background string) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:sld ` + nsPresentation + `><p:cSld>`)
	if c, ok := hexColor(background); ok {
		fmt.Fprintf(&sb, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, c)
	}
	sb.WriteString(`<p:spTree>` + emptyGroupShape)
	for i, box := range boxes {
		writeBox(&sb, i+2, box)
	}
	sb.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return sb.String()
}

func writeBox(sb *strings.Builder, id int, box textBox) {
	fmt.Fprintf(sb, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, escape(box.name))
	fmt.Fprintf(sb, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, box.x, box.y, box.w, box.h)
	sb.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
	fmt.Fprintf(sb, `<p:txBody><a:bodyPr wrap="square" rtlCol="0" anchor="%s"><a:normAutofit/></a:bodyPr><a:lstStyle/>`, box.anchor)

	if len(box.paragraphs) == 0 {
		sb.WriteString(`<a:p><a:endParaRPr lang="en-US" dirty="0"/></a:p>`)
	}
	for _, p := range box.paragraphs {
		writeParagraph(sb, p)
	}
	sb.WriteString(`</p:txBody></p:sp>`)
}

func writeParagraph(sb *strings.Builder, p paragraph) {
	sb.WriteString(`<a:p>`)

	attrs := ""
	if p.align != "" {
		attrs += fmt.Sprintf(` algn="%s"`, p.align)
	}
	if p.bullet {
		p.level = clampLevel(p.level)
		attrs += fmt.Sprintf(` marL="%d" lvl="%d" indent="%d"`, bulletIndentEMU*(p.level+1), p.level, -bulletIndentEMU)
		fmt.Fprintf(sb, `<a:pPr%s><a:buFont typeface="Arial"/><a:buChar char="&#8226;"/></a:pPr>`, attrs)
	} else {
		fmt.Fprintf(sb, `<a:pPr%s><a:buNone/></a:pPr>`, attrs)
	}

	rPr := fmt.Sprintf(`lang="en-US" sz="%d"`, p.size)
	if p.bold {
		rPr += ` b="1"`
	}
	if p.italic {
		rPr += ` i="1"`
	}
	rPr += ` dirty="0"`

	fmt.Fprintf(sb, `<a:r><a:rPr %s>`, rPr)
	if p.color != "" {
		fmt.Fprintf(sb, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, p.color)
	}
	if p.font != "" {
		fmt.Fprintf(sb, `<a:latin typeface="%s"/>`, escape(p.font))
	}
	fmt.Fprintf(sb, `</a:rPr><a:t>%s</a:t></a:r>`, escape(p.text))

	sb.WriteString(`</a:p>`)
}

func (w *PptxWriter) presentationXML(slideCount int) string {
	cx, cy := w.canvas.EMU()

	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:presentation ` + nsPresentation + ` saveSubsetFonts="1">`)
	sb.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	sb.WriteString(`<p:sldIdLst>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&sb, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+3)
	}
	sb.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&sb, `<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/>`, cx, cy)
	sb.WriteString(`</p:presentation>`)
	return sb.String()
}

func presentationRelsXML(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships ` + nsRelationships + `>`)
	fmt.Fprintf(&sb, `<Relationship Id="rId1" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, relSlideMaster)
	fmt.Fprintf(&sb, `<Relationship Id="rId2" Type="%s" Target="theme/theme1.xml"/>`, relTheme)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&sb, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, i+3, relSlide, i+1)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

func contentTypesXML(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)

	override := func(part, contentType string) {
		fmt.Fprintf(&sb, `<Override PartName="%s" ContentType="%s"/>`, part, contentType)
	}
	override("/ppt/presentation.xml", ctPresentation)
	override("/ppt/slideMasters/slideMaster1.xml", ctSlideMaster)
	override("/ppt/slideLayouts/slideLayout1.xml", ctSlideLayout)
	override("/ppt/theme/theme1.xml", ctTheme)
	for i := 0; i < slideCount; i++ {
		override(fmt.Sprintf("/ppt/slides/slide%d.xml", i+1), ctSlide)
	}
	override("/docProps/core.xml", ctCoreProps)
	override("/docProps/app.xml", ctAppProps)

	sb.WriteString(`</Types>`)
	return sb.String()
}

func rootRelsXML() string {
	return xmlHeader +
		`<Relationships ` + nsRelationships + `>` +
		`<Relationship Id="rId1" Type="` + relOfficeDocument + `" Target="ppt/presentation.xml"/>` +
		`<Relationship Id="rId2" Type="` + relCoreProps + `" Target="docProps/core.xml"/>` +
		`<Relationship Id="rId3" Type="` + relExtendedProps + `" Target="docProps/app.xml"/>` +
		`</Relationships>`
}

func coreXML(meta Metadata) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&sb, `<dc:title>%s</dc:title>`, escape(meta.Title))
	if meta.Author != "" {
		fmt.Fprintf(&sb, `<dc:creator>%s</dc:creator>`, escape(meta.Author))
	}
	if !meta.CreatedAt.IsZero() {
		fmt.Fprintf(&sb, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, meta.CreatedAt.UTC().Format(time.RFC3339))
	}
	sb.WriteString(`</cp:coreProperties>`)
	return sb.String()
}

func (w *PptxWriter) appXML(slideCount int) string {
	return xmlHeader +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
		`<Application>` + escape(w.application) + `</Application>` +
		fmt.Sprintf(`<Slides>%d</Slides>`, slideCount) +
		`</Properties>`
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

// hexColor accepts #RGB and #RRGGBB and returns the upper-case six digit form.
func hexColor(c string) (string, bool) {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	if len(c) != 6 {
		return "", false
	}
	for _, r := range c {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", false
		}
	}
	return strings.ToUpper(c), true
}

func alignment(textAlign string) string {
	switch textAlign {
	case "left":
		return "l"
	case "center":
		return "ctr"
	case "right":
		return "r"
	case "justify":
		return "just"
	default:
		return ""
	}
}
