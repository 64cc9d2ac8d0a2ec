// Package io provides JSON import and export for pattern descriptors.
//
// # Overview
//
// The JSON form is the interchange format used by the CLI output, the file
// and Redis caches, and the HTTP API. It is not a Life file format: pattern
// files are only ever read, never written.
//
// # JSON Format
//
//	{
//	  "survival": [2, 3],
//	  "birth": [3],
//	  "cells": [
//	    {"x": 1, "y": -1},
//	    {"x": 2, "y": 0}
//	  ],
//	  "comments": ["Glider"]
//	}
//
// survival and birth keep the order declared in the source file. cells keep
// discovery order and may contain duplicates. comments is omitted when empty.
//
// # Import
//
// Use [ImportJSON] to read a descriptor from a file path, or [ReadJSON] to
// read from any io.Reader. Coordinates outside the int16 range are rejected
// by the decoder.
//
// # Export
//
// Use [ExportJSON] to write a descriptor to a file, or [WriteJSON] to write
// to any io.Writer. [MarshalDescriptor] and [UnmarshalDescriptor] work on
// byte slices for caching.
package io
