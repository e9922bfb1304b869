// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"slidepress/internal/layout"
	"slidepress/internal/models"
)

// Slide geometry, in inches. Widescreen 16:9 deck.
const (
	emuPerInch  = 914400
	slideWidth  = 13.33
	slideHeight = 7.5
)

// Slide size in EMU, the canonical widescreen values.
const (
	slideCx = 12192000
	slideCy = 6858000
)

// Text colors used across layouts. Dark slides (full-bleed photo or a
// colored background) switch to the light pair.
const (
	colorHeading      = "363636"
	colorBody         = "444444"
	colorMuted        = "666666"
	colorLightHeading = "FFFFFF"
	colorLightBody    = "EEEEEE"
)

// PPTXBuilder assembles a PowerPoint file directly as OOXML parts. The
// per-layout box geometry matches the HTML preview proportions, so the
// deck reads the same on both sides.
type PPTXBuilder struct {
	fetcher ImageFetcher
	logger  *slog.Logger
}

// NewPPTXBuilder returns a builder that embeds slide imagery via fetcher.
func NewPPTXBuilder(fetcher ImageFetcher, logger *slog.Logger) *PPTXBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &PPTXBuilder{fetcher: fetcher, logger: logger}
}

// bullet styles for list paragraphs.
const (
	bulletNone = ""
	bulletDot  = "•"
	bulletStar = "★"
)

// paragraph is one line of a text box, with uniform run formatting.
type paragraph struct {
	text   string
	sizePt int
	bold   bool
	align  string // "", "ctr"
	color  string
	bullet string
}

// mediaPart is one embedded image file.
type mediaPart struct {
	name string // file name under ppt/media/
	data []byte
}

// slidePart collects everything belonging to one slide.
type slidePart struct {
	shapes     []string
	relEntries []string
	media      []mediaPart
	background string // hex without '#', empty for default
	nextShape  int
	nextRel    int
}

func newSlidePart() *slidePart {
	// rId1 is reserved for the slide layout relationship.
	return &slidePart{nextShape: 2, nextRel: 2}
}

func (s *slidePart) shapeID() int {
	id := s.nextShape
	s.nextShape++
	return id
}

// addImage registers an image part plus its relationship and returns the
// picture shape XML.
func (s *slidePart) addImage(data []byte, mediaIndex int, x, y, w, h float64) string {
	name := fmt.Sprintf("image%d.jpg", mediaIndex)
	relID := fmt.Sprintf("rId%d", s.nextRel)
	s.nextRel++

	s.media = append(s.media, mediaPart{name: name, data: data})
	s.relEntries = append(s.relEntries, fmt.Sprintf(
		`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/%s"/>`,
		relID, name))

	return pictureXML(s.shapeID(), relID, x, y, w, h)
}

func (s *slidePart) addText(x, y, w, h float64, paras []paragraph) {
	s.shapes = append(s.shapes, textBoxXML(s.shapeID(), x, y, w, h, paras))
}

// Build renders the presentation to PPTX bytes. Images that fail to
// download are skipped; the deck still exports.
func (b *PPTXBuilder) Build(ctx context.Context, p *models.Presentation) ([]byte, error) {
	var slides []*slidePart
	mediaIndex := 1

	for _, slide := range p.Slides {
		part := newSlidePart()
		b.buildSlide(ctx, part, slide, &mediaIndex)
		slides = append(slides, part)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if err := writeStaticParts(zw, len(slides)); err != nil {
		return nil, err
	}
	for i, part := range slides {
		if err := writeSlideParts(zw, i+1, part); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize pptx: %w", err)
	}
	return buf.Bytes(), nil
}

// fetchImage downloads one slide image, absorbing failures.
func (b *PPTXBuilder) fetchImage(ctx context.Context, url string) []byte {
	if url == "" || b.fetcher == nil {
		return nil
	}
	data, err := b.fetcher.Fetch(ctx, url)
	if err != nil {
		b.logger.Warn("slide image skipped", "url", url, "error", err)
		return nil
	}
	return data
}

// buildSlide lays out one slide according to its layout spec.
func (b *PPTXBuilder) buildSlide(ctx context.Context, part *slidePart, slide models.Slide, mediaIndex *int) {
	spec := layout.For(slide.Layout)

	if slide.BackgroundColor != "" {
		part.background = strings.TrimPrefix(slide.BackgroundColor, "#")
	}
	dark := part.background != ""

	image := b.fetchImage(ctx, slide.ImageURL)

	if spec.FullBleedImage {
		if image != nil {
			part.shapes = append(part.shapes, part.addImage(image, *mediaIndex, 0, 0, slideWidth, slideHeight))
			*mediaIndex++
			part.shapes = append(part.shapes, overlayXML(part.shapeID()))
			dark = true
		}
		heading := colorHeading
		muted := colorMuted
		if dark {
			heading = colorLightHeading
			muted = colorLightBody
		}

		if slide.Layout == models.LayoutConclusion {
			part.addText(1, 1, 11.33, 1.5, []paragraph{
				{text: slide.Title, sizePt: 36, bold: true, align: "ctr", color: heading},
			})
			body := colorBody
			if dark {
				body = colorLightBody
			}
			var points []paragraph
			for _, pt := range layout.ConclusionPoints(slide.BulletPoints) {
				points = append(points, paragraph{text: pt, sizePt: 18, color: body, bullet: bulletStar})
			}
			if len(points) > 0 {
				part.addText(2, 3, 9.33, 4, points)
			}
			return
		}

		part.addText(1, 2, 11.33, 2, []paragraph{
			{text: slide.Title, sizePt: 44, bold: true, align: "ctr", color: heading},
		})
		if slide.Subtitle != "" {
			part.addText(1, 4, 11.33, 1, []paragraph{
				{text: slide.Subtitle, sizePt: 24, align: "ctr", color: muted},
			})
		}
		return
	}

	switch {
	case spec.ShowNarrative:
		part.addText(0.5, 0.25, 9, 0.75, []paragraph{
			{text: slide.Title, sizePt: 28, bold: true, color: colorHeading},
		})
		part.addText(0.5, 1, 9, 6, narrativeParagraphs(slide.DetailedContent))
		if image != nil {
			part.shapes = append(part.shapes, part.addImage(image, *mediaIndex, 9.83, 1.5, 3, 2.25))
			*mediaIndex++
		}
		if secondary := b.fetchImage(ctx, slide.SecondaryImageURL); secondary != nil {
			part.shapes = append(part.shapes, part.addImage(secondary, *mediaIndex, 9.83, 4.25, 3, 2.25))
			*mediaIndex++
		}

	case spec.SideImage:
		part.addText(0.5, 0.5, 6, 1, []paragraph{
			{text: slide.Title, sizePt: 28, bold: true, color: colorHeading},
		})
		if points := bulletParagraphs(slide.BulletPoints, 14); len(points) > 0 {
			part.addText(0.5, 1.5, 6, 5.5, points)
		}
		if image != nil {
			part.shapes = append(part.shapes, part.addImage(image, *mediaIndex, 7, 1.5, 5.83, 4.5))
			*mediaIndex++
		}

	case spec.LabeledColumns:
		part.addText(0.5, 0.5, 12.33, 1, []paragraph{
			{text: slide.Title, sizePt: 32, bold: true, color: colorHeading},
		})
		adv, chl := layout.SplitComparison(slide.BulletPoints)
		part.addText(0.5, 1.5, 6, 0.6, []paragraph{
			{text: layout.AdvantagesLabel, sizePt: 20, bold: true, color: colorHeading},
		})
		if points := bulletParagraphs(adv, 14); len(points) > 0 {
			part.addText(0.5, 2.2, 6, 4.8, points)
		}
		part.addText(7, 1.5, 6, 0.6, []paragraph{
			{text: layout.ChallengesLabel, sizePt: 20, bold: true, color: colorHeading},
		})
		if points := bulletParagraphs(chl, 14); len(points) > 0 {
			part.addText(7, 2.2, 6, 4.8, points)
		}

	case slide.Layout == models.LayoutImage:
		part.addText(0.5, 0.5, 12.33, 1, []paragraph{
			{text: slide.Title, sizePt: 32, bold: true, color: colorHeading},
		})
		if image != nil {
			part.shapes = append(part.shapes, part.addImage(image, *mediaIndex, 1, 1.5, 11.33, 5))
			*mediaIndex++
		}

	default: // two-column content
		part.addText(0.5, 0.5, 12.33, 1, []paragraph{
			{text: slide.Title, sizePt: 32, bold: true, color: colorHeading},
		})
		left, right := layout.Columns(slide.BulletPoints)
		if points := bulletParagraphs(left, 14); len(points) > 0 {
			part.addText(0.5, 1.5, 6, 5.5, points)
		}
		if points := bulletParagraphs(right, 14); len(points) > 0 {
			part.addText(7, 1.5, 6, 5.5, points)
		}
	}
}

// bulletParagraphs turns bullet strings into dot-bulleted paragraphs.
func bulletParagraphs(points []string, sizePt int) []paragraph {
	var paras []paragraph
	for _, pt := range points {
		paras = append(paras, paragraph{text: pt, sizePt: sizePt, color: colorBody, bullet: bulletDot})
	}
	return paras
}

// narrativeParagraphs splits long-form slide text into paragraphs,
// dropping markdown heading markers since PPTX text boxes are plain.
func narrativeParagraphs(content string) []paragraph {
	var paras []paragraph
	for _, block := range strings.Split(content, "\n") {
		line := strings.TrimSpace(block)
		if line == "" {
			continue
		}
		bold := false
		if strings.HasPrefix(line, "#") {
			line = strings.TrimSpace(strings.TrimLeft(line, "#"))
			bold = true
		}
		paras = append(paras, paragraph{text: line, sizePt: 11, bold: bold, color: colorBody})
	}
	if len(paras) == 0 {
		paras = append(paras, paragraph{text: "", sizePt: 11, color: colorBody})
	}
	return paras
}

func emu(inches float64) int64 {
	return int64(inches*emuPerInch + 0.5)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func esc(s string) string { return xmlEscaper.Replace(s) }

// textBoxXML renders one text box shape.
func textBoxXML(id int, x, y, w, h float64, paras []paragraph) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, id)
	fmt.Fprintf(&sb, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`,
		emu(x), emu(y), emu(w), emu(h))
	sb.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)

	for _, p := range paras {
		sb.WriteString(`<a:p><a:pPr`)
		if p.align != "" {
			fmt.Fprintf(&sb, ` algn="%s"`, p.align)
		}
		sb.WriteString(">")
		if p.bullet != "" {
			fmt.Fprintf(&sb, `<a:buFont typeface="Arial"/><a:buChar char="%s"/>`, p.bullet)
		} else {
			sb.WriteString(`<a:buNone/>`)
		}
		sb.WriteString(`</a:pPr>`)

		fmt.Fprintf(&sb, `<a:r><a:rPr lang="en-US" sz="%d"`, p.sizePt*100)
		if p.bold {
			sb.WriteString(` b="1"`)
		}
		sb.WriteString(` dirty="0">`)
		if p.color != "" {
			fmt.Fprintf(&sb, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, p.color)
		}
		fmt.Fprintf(&sb, `</a:rPr><a:t>%s</a:t></a:r></a:p>`, esc(p.text))
	}

	sb.WriteString(`</p:txBody></p:sp>`)
	return sb.String()
}

// pictureXML renders one embedded picture shape.
func pictureXML(id int, relID string, x, y, w, h float64) string {
	return fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`+
		`<p:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`,
		id, id, relID, emu(x), emu(y), emu(w), emu(h))
}

// overlayXML renders the half-transparent scrim over full-bleed photos
// so light text stays readable.
func overlayXML(id int) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Overlay %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`+
		`<a:solidFill><a:srgbClr val="000000"><a:alpha val="50000"/></a:srgbClr></a:solidFill></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>`,
		id, id, slideCx, slideCy)
}

// slideXML renders a full slide part from its accumulated shapes.
func slideXML(part *slidePart) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld>`)
	if part.background != "" {
		fmt.Fprintf(&sb, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`,
			strings.ToUpper(part.background))
	}
	sb.WriteString(`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	sb.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	for _, shape := range part.shapes {
		sb.WriteString(shape)
	}
	sb.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return sb.String()
}

func slideRelsXML(part *slidePart) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`)
	for _, rel := range part.relEntries {
		sb.WriteString(rel)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

// writeStaticParts emits the fixed package scaffolding: content types,
// package rels, presentation part, master, layout, and theme.
func writeStaticParts(zw *zip.Writer, slideCount int) error {
	var types strings.Builder
	types.WriteString(xmlHeader)
	types.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	types.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	types.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	types.WriteString(`<Default Extension="jpg" ContentType="image/jpeg"/>`)
	types.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
	types.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	types.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	types.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	types.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	types.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&types, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	types.WriteString(`</Types>`)
	if err := writePart(zw, "[Content_Types].xml", types.String()); err != nil {
		return err
	}

	pkgRels := xmlHeader +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
		`</Relationships>`
	if err := writePart(zw, "_rels/.rels", pkgRels); err != nil {
		return err
	}

	var pres strings.Builder
	pres.WriteString(xmlHeader)
	pres.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	pres.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	pres.WriteString(`<p:sldIdLst>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&pres, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i+1)
	}
	pres.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&pres, `<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="%d" cy="%d"/>`, slideCx, slideCy, slideCy, slideCx)
	pres.WriteString(`</p:presentation>`)
	if err := writePart(zw, "ppt/presentation.xml", pres.String()); err != nil {
		return err
	}

	var presRels strings.Builder
	presRels.WriteString(xmlHeader)
	presRels.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	presRels.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&presRels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+1, i)
	}
	presRels.WriteString(`</Relationships>`)
	if err := writePart(zw, "ppt/_rels/presentation.xml.rels", presRels.String()); err != nil {
		return err
	}

	master := xmlHeader +
		`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		`</p:spTree></p:cSld>` +
		`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
		`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
		`</p:sldMaster>`
	if err := writePart(zw, "ppt/slideMasters/slideMaster1.xml", master); err != nil {
		return err
	}

	masterRels := xmlHeader +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
		`</Relationships>`
	if err := writePart(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRels); err != nil {
		return err
	}

	layoutXML := xmlHeader +
		`<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank">` +
		`<p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`
	if err := writePart(zw, "ppt/slideLayouts/slideLayout1.xml", layoutXML); err != nil {
		return err
	}

	layoutRels := xmlHeader +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
		`</Relationships>`
	if err := writePart(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRels); err != nil {
		return err
	}

	return writePart(zw, "ppt/theme/theme1.xml", themeXML)
}

// writeSlideParts emits one slide part, its rels, and its media.
func writeSlideParts(zw *zip.Writer, index int, part *slidePart) error {
	if err := writePart(zw, fmt.Sprintf("ppt/slides/slide%d.xml", index), slideXML(part)); err != nil {
		return err
	}
	if err := writePart(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", index), slideRelsXML(part)); err != nil {
		return err
	}
	for _, m := range part.media {
		w, err := zw.Create("ppt/media/" + m.name)
		if err != nil {
			return err
		}
		if _, err := w.Write(m.data); err != nil {
			return err
		}
	}
	return nil
}

func writePart(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// themeXML is the minimal theme PowerPoint requires a master to carry.
const themeXML = xmlHeader +
	`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme"><a:themeElements>` +
	`<a:clrScheme name="Office"><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme>` +
	`<a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme>` +
	`<a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>` +
	`<a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>` +
	`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>` +
	`<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme>` +
	`</a:themeElements></a:theme>`
