// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/formats/vorbis"
	"github.com/ik5/harmix/formats/wav"
)

// ExampleDecoder_Decode collects an Ogg Vorbis file and re-encodes it as WAV.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	buf, err := audio.Collect(src)
	if err != nil {
		log.Fatal(err)
	}

	data, err := wav.Encode(buf)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("output.wav", data, 0o644); err != nil {
		log.Fatal(err)
	}
}

// Example_errorHandling shows how malformed input is reported.
func Example_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("not an ogg stream")))
	if errors.Is(err, vorbis.ErrNotVorbisFile) {
		fmt.Println("Detected: not an Ogg Vorbis stream")
	}
	// Output: Detected: not an Ogg Vorbis stream
}
