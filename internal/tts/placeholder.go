package tts

import (
	"encoding/binary"
	"os"

	"vibe-commentator-bot/internal/tempfile"
)

const (
	placeholderSeconds    = 2
	placeholderSampleRate = 16000
)

// writePlaceholderWAV renders the last-resort artifact: two seconds of
// single-channel 16 kHz silence.
func writePlaceholderWAV() (string, error) {
	const bytesPerSample = 2
	dataSize := placeholderSampleRate * placeholderSeconds * bytesPerSample

	header := make([]byte, 0, 44)
	header = append(header, []byte("RIFF")...)
	header = binary.LittleEndian.AppendUint32(header, uint32(36+dataSize))
	header = append(header, []byte("WAVE")...)
	header = append(header, []byte("fmt ")...)
	header = binary.LittleEndian.AppendUint32(header, 16)
	header = binary.LittleEndian.AppendUint16(header, 1) // PCM
	header = binary.LittleEndian.AppendUint16(header, 1) // mono
	header = binary.LittleEndian.AppendUint32(header, placeholderSampleRate)
	header = binary.LittleEndian.AppendUint32(header, placeholderSampleRate*bytesPerSample)
	header = binary.LittleEndian.AppendUint16(header, bytesPerSample)
	header = binary.LittleEndian.AppendUint16(header, 16) // bits per sample
	header = append(header, []byte("data")...)
	header = binary.LittleEndian.AppendUint32(header, uint32(dataSize))

	audioPath := tempfile.New("placeholder", ".wav")
	file, err := os.Create(audioPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(header); err != nil {
		return "", err
	}
	if _, err := file.Write(make([]byte, dataSize)); err != nil {
		return "", err
	}
	return audioPath, nil
}
