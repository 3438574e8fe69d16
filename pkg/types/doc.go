// Package types defines the Store and Locator interfaces, the Blob, Tag,
// and BlobTag entities, and the standard errors for blobtag.
//
// A Blob is identified by the content hash of a file. A Tag is a label. A
// BlobTag links one of each. All three carry a surrogate identifier that the
// store assigns the first time their natural key is seen.
package types
