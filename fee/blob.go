package fee

import (
	"github.com/calebcase/vmint/arith"
	"github.com/calebcase/vmint/integer"
)

// Params configures the blob fee market.
type Params struct {
	MinBlobGasPrice            integer.U64
	BlobGasPriceUpdateFraction integer.U64
	TargetBlobGasPerBlock      integer.U64
	GasPerBlob                 integer.U64
}

// CancunParams are the blob fee market parameters of the Cancun fork.
var CancunParams = Params{
	MinBlobGasPrice:            1,
	BlobGasPriceUpdateFraction: 3338477,
	TargetBlobGasPerBlock:      393216,
	GasPerBlob:                 1 << 17,
}

// BlobGasPrice returns the price of one unit of blob gas for a block with the
// given excess blob gas.
func (p Params) BlobGasPrice(excessBlobGas integer.U64) (arith.Uint, error) {
	return TaylorExponential(
		p.MinBlobGasPrice.ToUint(),
		excessBlobGas.ToUint(),
		p.BlobGasPriceUpdateFraction.ToUint(),
	)
}

// BlobGasUsed returns the blob gas consumed by the given number of blobs.
func (p Params) BlobGasUsed(blobs integer.U64) (integer.U64, error) {
	return p.GasPerBlob.Mul(blobs)
}

// ExcessBlobGas returns the excess blob gas of a block given its parent's
// excess and used blob gas.
func (p Params) ExcessBlobGas(parentExcess, parentUsed integer.U64) (integer.U64, error) {
	total, err := parentExcess.Add(parentUsed)
	if err != nil {
		return 0, err
	}

	target := p.TargetBlobGasPerBlock.ToUint()

	excess, err := arith.Max(total.ToUint(), target).Sub(target)
	if err != nil {
		return 0, err
	}

	return integer.U64FromUint(excess)
}

// BlobGasPrice is CancunParams.BlobGasPrice.
func BlobGasPrice(excessBlobGas integer.U64) (arith.Uint, error) {
	return CancunParams.BlobGasPrice(excessBlobGas)
}

// ExcessBlobGas is CancunParams.ExcessBlobGas.
func ExcessBlobGas(parentExcess, parentUsed integer.U64) (integer.U64, error) {
	return CancunParams.ExcessBlobGas(parentExcess, parentUsed)
}
