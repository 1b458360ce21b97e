package qrencode

import (
	"fmt"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/gf256"
	"github.com/qr-go/qrencode/qrspec"
	"github.com/qr-go/qrencode/reedsolomon"
)

// interleave splits the padded data-codeword stream into its group/block
// structure, computes EC codewords per block, interleaves data then EC by
// column, and appends the version's remainder bits (spec.md §4.6).
func interleave(bits *bitutil.BitArray, version *qrspec.Version, level qrspec.ErrorCorrectionLevel) (*bitutil.BitArray, error) {
	ecBlocks := version.ECBlocksForLevel(level)
	numTotalBytes := version.TotalCodewords
	numDataBytes := numTotalBytes - ecBlocks.TotalECCodewords()
	numRSBlocks := ecBlocks.NumBlocks()

	if bits.SizeInBytes() != numDataBytes {
		return nil, fmt.Errorf("%w: data bytes mismatch: have %d want %d", ErrInternalInvariantViolated, bits.SizeInBytes(), numDataBytes)
	}

	type blockPair struct {
		dataBytes []byte
		ecBytes   []byte
	}
	blocks := make([]blockPair, numRSBlocks)
	encoder := reedsolomon.NewEncoder(gf256.QR)

	dataOffset := 0
	maxDataBytes, maxECBytes := 0, 0
	for i := 0; i < numRSBlocks; i++ {
		numDataInBlock, numECInBlock := blockSizes(numTotalBytes, numDataBytes, numRSBlocks, i)

		dataBytes := make([]byte, numDataInBlock)
		bits.ToBytes(8*dataOffset, dataBytes, 0, numDataInBlock)

		toEncode := make([]int, numDataInBlock+numECInBlock)
		for j, b := range dataBytes {
			toEncode[j] = int(b)
		}
		encoder.Encode(toEncode, numECInBlock)
		ecBytes := make([]byte, numECInBlock)
		for j := 0; j < numECInBlock; j++ {
			ecBytes[j] = byte(toEncode[numDataInBlock+j])
		}

		blocks[i] = blockPair{dataBytes: dataBytes, ecBytes: ecBytes}
		if numDataInBlock > maxDataBytes {
			maxDataBytes = numDataInBlock
		}
		if numECInBlock > maxECBytes {
			maxECBytes = numECInBlock
		}
		dataOffset += numDataInBlock
	}

	result := bitutil.NewBitArray(0)
	for i := 0; i < maxDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.dataBytes) {
				result.AppendBits(uint32(block.dataBytes[i]), 8)
			}
		}
	}
	for i := 0; i < maxECBytes; i++ {
		for _, block := range blocks {
			if i < len(block.ecBytes) {
				result.AppendBits(uint32(block.ecBytes[i]), 8)
			}
		}
	}

	if result.SizeInBytes() != numTotalBytes {
		return nil, fmt.Errorf("%w: interleaved size mismatch: have %d want %d", ErrInternalInvariantViolated, result.SizeInBytes(), numTotalBytes)
	}

	for i := 0; i < version.RemainderBits(); i++ {
		result.AppendBit(false)
	}

	return result, nil
}

// blockSizes returns the (dataBytes, ecBytes) for block blockID, following
// the QR rule that blocks in group 2 (if any) carry one more data byte
// than group 1, with EC-per-block held constant across both groups.
func blockSizes(numTotalBytes, numDataBytes, numRSBlocks, blockID int) (int, int) {
	numGroup2 := numTotalBytes % numRSBlocks
	numGroup1 := numRSBlocks - numGroup2
	totalGroup1 := numTotalBytes / numRSBlocks
	totalGroup2 := totalGroup1 + 1
	dataGroup1 := numDataBytes / numRSBlocks
	dataGroup2 := dataGroup1 + 1
	ecGroup1 := totalGroup1 - dataGroup1
	ecGroup2 := totalGroup2 - dataGroup2

	if blockID < numGroup1 {
		return dataGroup1, ecGroup1
	}
	return dataGroup2, ecGroup2
}
