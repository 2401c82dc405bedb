// Package pipeline drives the per-format reader/writer construction and the
// 2x2 block traversal that converts one Image into another.
package pipeline

import (
	"github.com/deepteams/pixelconv/internal/colormatrix"
	"github.com/deepteams/pixelconv/internal/lane"
	"github.com/deepteams/pixelconv/internal/primaries"
	"github.com/deepteams/pixelconv/internal/transfer"
)

// The top-level package defines its own Space/Transfer/Primaries/Endian
// enums so callers never import internal packages; these small mapping
// functions translate them onto the internal packages' equivalent Kind
// enums at the pipeline boundary, mirroring how the reference crate keeps
// its public PixelFormat/ColorSpace enums separate from the internal
// matrix-selection tables.

// SpaceKind mirrors pixelconv.Space's ordinal values without importing the
// root package (which imports this one), so the caller passes plain ints.
type SpaceKind int

const (
	SpaceBT601 SpaceKind = iota
	SpaceBT709
	SpaceBT2020
	SpaceBT2100PQ
	SpaceBT2100HLG
)

func (s SpaceKind) ToColorMatrix() colormatrix.Kind {
	switch s {
	case SpaceBT601:
		return colormatrix.BT601
	case SpaceBT2020:
		return colormatrix.BT2020
	case SpaceBT2100PQ:
		return colormatrix.BT2100PQ
	case SpaceBT2100HLG:
		return colormatrix.BT2100HLG
	default:
		return colormatrix.BT709
	}
}

type TransferKind int

const (
	TransferLinear TransferKind = iota
	TransferGamma22
	TransferGamma28
	TransferSRGB
	TransferSDR
	TransferBT2100PQ
	TransferBT2100HLG
)

func (t TransferKind) ToTransfer() transfer.Kind {
	switch t {
	case TransferGamma22:
		return transfer.Gamma22
	case TransferGamma28:
		return transfer.Gamma28
	case TransferSRGB:
		return transfer.SRGB
	case TransferSDR:
		return transfer.SDR
	case TransferBT2100PQ:
		return transfer.BT2100PQ
	case TransferBT2100HLG:
		return transfer.BT2100HLG
	default:
		return transfer.Linear
	}
}

type PrimariesKind int

const (
	PrimariesBT601NTSC PrimariesKind = iota
	PrimariesBT709
	PrimariesBT2020
)

func (p PrimariesKind) ToPrimaries() primaries.Kind {
	switch p {
	case PrimariesBT601NTSC:
		return primaries.BT601NTSC
	case PrimariesBT2020:
		return primaries.BT2020
	default:
		return primaries.BT709
	}
}

type EndianKind int

const (
	LittleEndian EndianKind = iota
	BigEndian
)

func (e EndianKind) ToLaneEndian() lane.Endian {
	if e == BigEndian {
		return lane.BigEndian
	}
	return lane.LittleEndian
}
