// Package pcm turns synthesized float samples into normalized 16-bit mono
// WAV data and reads such files back.
//
// Normalization scales the buffer so that its largest absolute sample maps
// to [MaxAmplitude]; conversion to integers truncates toward zero. A silent
// buffer encodes as zeros.
package pcm
