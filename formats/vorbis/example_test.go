// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavstream/audio"
	"github.com/ik5/wavstream/formats/vorbis"
	"github.com/ik5/wavstream/formats/wav"
)

// ExampleDecoder_Decode shows how to decode an Ogg Vorbis file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}

	// the source owns f from here on
	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("Decoded Ogg Vorbis: %d Hz, %d channels\n", src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_convertToWav converts Ogg Vorbis to 16kHz mono WAV.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}

	src, err := vorbis.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	resampled, err := audio.NewResampler(audio.NewMonoMixer(src), 16000)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	n, err := wav.Encode(out, resampled)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wrote %d samples\n", n)
}
