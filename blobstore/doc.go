// Package blobstore abstracts where encoded frames live. A frame written by
// the framestore package is an immutable, write-once blob; stores only need
// whole-object put, random-access read, delete and listing.
//
// Backends: MemoryStore (tests), LocalStore (filesystem, memory-mapped
// reads where the platform supports it), and the minio and s3 subpackages
// for object storage.
package blobstore
