package pptx

import (
	"github.com/beevik/etree"

	"pptgen/style"
)

// themeSlots maps theme color scheme onto registry names.
var themeSlots = []struct {
	slot  string
	color style.ColorName
}{
	{"dk1", style.NeutralDark},
	{"lt1", style.White},
	{"dk2", style.Primary},
	{"lt2", style.NeutralLight},
	{"accent1", style.Primary},
	{"accent2", style.Accent},
	{"accent3", style.Success},
	{"accent4", style.Error},
	{"accent5", style.NeutralDark},
	{"accent6", style.NeutralLight},
	{"hlink", style.Primary},
	{"folHlink", style.Accent},
}

func themeDocument(name string, reg *style.Registry) (*etree.Document, error) {
	doc := newXMLDocument()
	theme := doc.CreateElement("a:theme")
	theme.CreateAttr("xmlns:a", nsDrawingML)
	theme.CreateAttr("name", name)

	elements := theme.CreateElement("a:themeElements")

	scheme := elements.CreateElement("a:clrScheme")
	scheme.CreateAttr("name", name)
	for _, s := range themeSlots {
		c, err := reg.Color(s.color)
		if err != nil {
			return nil, withWhere(err, "theme color scheme")
		}
		scheme.CreateElement("a:" + s.slot).CreateElement("a:srgbClr").CreateAttr("val", c.Hex())
	}

	heading, err := reg.Font(style.Heading)
	if err != nil {
		return nil, withWhere(err, "theme font scheme")
	}
	body, err := reg.Font(style.Body)
	if err != nil {
		return nil, withWhere(err, "theme font scheme")
	}
	fonts := elements.CreateElement("a:fontScheme")
	fonts.CreateAttr("name", name)
	writeFontCollection(fonts.CreateElement("a:majorFont"), heading)
	writeFontCollection(fonts.CreateElement("a:minorFont"), body)

	writeFormatScheme(elements.CreateElement("a:fmtScheme"), name)

	theme.CreateElement("a:objectDefaults")
	theme.CreateElement("a:extraClrSchemeLst")
	return doc, nil
}

func writeFontCollection(parent *etree.Element, typeface string) {
	parent.CreateElement("a:latin").CreateAttr("typeface", typeface)
	parent.CreateElement("a:ea").CreateAttr("typeface", "")
	parent.CreateElement("a:cs").CreateAttr("typeface", "")
}

// writeFormatScheme writes the three required entries of every style list,
// all plain so rendering depends only on explicit shape properties.
func writeFormatScheme(fmtScheme *etree.Element, name string) {
	fmtScheme.CreateAttr("name", name)

	fills := fmtScheme.CreateElement("a:fillStyleLst")
	for range 3 {
		fills.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}

	lines := fmtScheme.CreateElement("a:lnStyleLst")
	for _, w := range []string{"6350", "12700", "19050"} {
		ln := lines.CreateElement("a:ln")
		ln.CreateAttr("w", w)
		ln.CreateAttr("cap", "flat")
		ln.CreateAttr("cmpd", "sng")
		ln.CreateAttr("algn", "ctr")
		ln.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
		ln.CreateElement("a:prstDash").CreateAttr("val", "solid")
		ln.CreateElement("a:miter").CreateAttr("lim", "800000")
	}

	effects := fmtScheme.CreateElement("a:effectStyleLst")
	for range 3 {
		effects.CreateElement("a:effectStyle").CreateElement("a:effectLst")
	}

	bgFills := fmtScheme.CreateElement("a:bgFillStyleLst")
	for range 3 {
		bgFills.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}
}
