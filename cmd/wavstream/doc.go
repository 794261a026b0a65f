// SPDX-License-Identifier: EPL-2.0

// Command wavstream reads lines from standard input, has a TTS server speak
// each one and plays the streamed answer as it arrives. Type q to quit.
//
// With -output.dir set the audio is saved as numbered WAV files instead, and
// no audio device is needed.
//
// Configuration comes from flags, optionally layered over a YAML file given
// with -config.file. Run with -help for the full list.
package main
