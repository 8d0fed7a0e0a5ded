// ABOUTME: Test helpers for building WAV images
// ABOUTME: Assembles chunks by hand so malformed files can be expressed
package riff

import "encoding/binary"

func chunk(id string, payload []byte) []byte {
	b := make([]byte, 8, 8+len(payload)+1)
	copy(b[0:4], id)
	binary.LittleEndian.PutUint32(b[4:8], uint32(len(payload)))
	b = append(b, payload...)
	if len(payload)%2 == 1 {
		b = append(b, 0)
	}
	return b
}

func fmtPayload(audioFormat, channels uint16, sampleRate uint32, bits uint16) []byte {
	blockAlign := channels * bits / 8
	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[0:], audioFormat)
	binary.LittleEndian.PutUint16(b[2:], channels)
	binary.LittleEndian.PutUint32(b[4:], sampleRate)
	binary.LittleEndian.PutUint32(b[8:], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(b[12:], blockAlign)
	binary.LittleEndian.PutUint16(b[14:], bits)
	return b
}

func wavFile(chunks ...[]byte) []byte {
	var body []byte
	for _, c := range chunks {
		body = append(body, c...)
	}
	b := make([]byte, 12, 12+len(body))
	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], uint32(4+len(body)))
	copy(b[8:12], "WAVE")
	return append(b, body...)
}

func pcmBytes(samples []int16) []byte {
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}
