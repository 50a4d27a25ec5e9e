package pipeline

import (
	"fmt"

	"github.com/gomutex/godocx"

	"github.com/reelworks/reelify/internal/domain"
)

const (
	docxFont     = "Times New Roman"
	docxFontSize = 13
)

// writeTranscriptDocx renders the transcript as a styled docx: a bold
// title followed by one paragraph per segment line.
func writeTranscriptDocx(title string, segments []domain.Segment, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(docxFont).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, seg := range segments {
		line := fmt.Sprintf("[%.2fs - %.2fs]: %s", seg.Start, seg.End, seg.Text)
		doc.AddParagraph("").AddText(line).Font(docxFont).Size(docxFontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
