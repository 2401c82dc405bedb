// Package codec implements the per-format readers and writers that sit
// between raw plane bytes and the block.RGBA interchange type.
package codec

import "github.com/deepteams/pixelconv/internal/lane"

// studioY/studioUV rescale a [0,1] sample into studio (limited) range and
// back. Y uses [16,235]/255, UV uses [16,240]/255, per spec.md's
// "scale Y by 219/255 + 16/255 and UV by 224/255 + 16/255".
const (
	studioYScale  = 219.0 / 255.0
	studioYOffset = 16.0 / 255.0
	studioCScale  = 224.0 / 255.0
	studioCOffset = 16.0 / 255.0
)

func toStudioY(v lane.Vec) lane.Vec { return v.MulF(studioYScale).AddF(studioYOffset) }
func fromStudioY(v lane.Vec) lane.Vec {
	return v.SubF(studioYOffset).DivF(studioYScale)
}

func toStudioC(v lane.Vec) lane.Vec { return v.MulF(studioCScale).AddF(studioCOffset) }
func fromStudioC(v lane.Vec) lane.Vec {
	return v.SubF(studioCOffset).DivF(studioCScale)
}
