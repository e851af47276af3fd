package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// EncodeWAV wraps the buffer's raw PCM in a WAV container.
func (b *Buffer) EncodeWAV() []byte {
	var buf bytes.Buffer

	bitsPerSample := 16
	byteRate := b.SampleRate * b.Channels * bitsPerSample / 8
	blockAlign := b.Channels * bitsPerSample / 8

	dataSize := len(b.PCM)
	fileSize := 36 + dataSize

	// WAV header
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(fileSize))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))              // fmt chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))               // PCM format
	binary.Write(&buf, binary.LittleEndian, uint16(b.Channels))      // number of channels
	binary.Write(&buf, binary.LittleEndian, uint32(b.SampleRate))    // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))        // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))      // block align
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))   // bits per sample

	// data chunk
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(b.PCM)

	return buf.Bytes()
}

// DecodeWAV reads a 16-bit PCM WAV stream into a Buffer.
func DecodeWAV(r io.ReadSeeker) (*Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}

	pcmBuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read pcm data: %w", err)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d", dec.BitDepth)
	}

	pcm := make([]byte, len(pcmBuf.Data)*2)
	for i, sample := range pcmBuf.Data {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(sample)))
	}

	return &Buffer{
		PCM:        pcm,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}, nil
}
