// Package probe provides ffprobe-based media inspection and typed result
// structures. A single JSON call per file returns everything the sheet
// needs: container size and duration, the primary video stream's geometry,
// codec, frame rate and frame count, and the first audio stream's format.
package probe
