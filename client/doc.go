// SPDX-License-Identifier: EPL-2.0

// Package client talks to a text-to-speech server that streams its audio
// back as chunked WAV.
//
//	c, err := client.New(cfg, client.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if err := c.WaitReady(ctx); err != nil {
//	    return err
//	}
//
//	src, err := c.GenerateStream(ctx, "Hello there", "", "")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// GenerateStream returns once the audio header is decoded. The body is read
// as samples are pulled from the source, so playback can start while the
// server is still synthesising.
//
// The decoder is chosen from the response Content-Type through an
// audio.Registry, WAV when the server sends none.
package client
