// SPDX-License-Identifier: EPL-2.0

// Package playback plays audio sources on the default output device through
// github.com/hajimehoshi/oto/v2.
package playback
