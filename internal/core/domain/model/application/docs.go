// Package application provides the Application aggregate: a candidate's
// request to interview for a service, carrying the CV asset and the review
// status.
package application
