// Package services provides shared plumbing for pipeline collaborators:
// sentinel error markers with stage-aware wrapping, and context annotation
// helpers that let loggers tag lines with the image and stage being processed.
package services
