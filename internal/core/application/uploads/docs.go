// Package uploads turns the files of one request into stored assets. It
// applies the request limits and the field policies to every file before the
// first write, then stores the files one by one through the blob store.
package uploads
