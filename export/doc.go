// SPDX-License-Identifier: EPL-2.0

// Package export turns a stream of float audio batches into an Ogg Vorbis
// file, writing pages to the output as they complete.
//
// An Encoder goes through these states:
//
//	Created -> HeadersEmitted -> Encoding -> Finalizing -> Closed
//	Created -> Closed                        (setup failed)
//
// New sets the codec up (clamping the sample rate to 48 kHz and choosing
// constant or variable bitrate management) and writes the three header
// pages. Submit feeds interleaved batches. Close flushes the trailing blocks
// with an empty batch and releases the codec in reverse order of acquisition;
// it is safe to call more than once.
//
//	enc, err := export.New(f, vorbis.NewEngine(), 2, out)
//	if err != nil {
//	    return err
//	}
//	defer enc.Close()
//
//	for batch := range batches {
//	    if err := enc.Submit(batch, len(batch)/2, gain); err != nil {
//	        return err
//	    }
//	}
//	return enc.Close()
//
// A write that stores fewer bytes than a page holds stops the export:
// Submit and Close report ErrShortWrite (or ErrSinkClosed) and no further
// pages are written. The partial file is left to the caller.
package export
