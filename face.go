package seamcarving

import (
	"image"

	"github.com/FergusonShuai/seam-carving/utils"
	pigo "github.com/esimov/pigo/core"
)

// Cascade classifier settings.
const (
	faceMinSize     = 100
	faceShiftFactor = 0.1
	faceScaleFactor = 1.1
	faceIoU         = 0.2
	faceMinQuality  = 5.0
)

// detectFaces runs the cascade classifier over the grayscale converted
// image and returns the bounding rectangle of every detected face.
// Overlapping detections are clustered by their intersection over union,
// low quality clusters are dropped.
func (p *Processor) detectFaces(img *Image) []image.Rectangle {
	cParams := pigo.CascadeParams{
		MinSize:     faceMinSize,
		MaxSize:     utils.Max(img.Width, img.Height),
		ShiftFactor: faceShiftFactor,
		ScaleFactor: faceScaleFactor,

		ImageParams: pigo.ImageParams{
			Pixels: grayscale(img),
			Rows:   img.Height,
			Cols:   img.Width,
			Dim:    img.Width,
		},
	}

	faces := p.FaceDetector.RunCascade(cParams, p.FaceAngle)
	faces = p.FaceDetector.ClusterDetections(faces, faceIoU)

	rects := make([]image.Rectangle, 0, len(faces))
	for _, face := range faces {
		if face.Q <= faceMinQuality {
			continue
		}
		rects = append(rects, image.Rect(
			face.Col-face.Scale/2,
			face.Row-face.Scale/2,
			face.Col+face.Scale/2,
			face.Row+face.Scale/2,
		))
	}
	return rects
}
