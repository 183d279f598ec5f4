// Package kernel provides the primitives shared by every aggregate of the
// recruitment domain: the UUID value object used to identify services,
// applications, users and the asset entries they own, and the InterviewDate
// slot shared by services and applications.
package kernel
