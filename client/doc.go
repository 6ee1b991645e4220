// Package client implements the orchestrating OSLC client: the four-step
// discovery chain resolving a server/project/domain triple into capability
// endpoints, the paginated query engine and the CRUD operations against
// discovered endpoints. All requests flow through the shared authentication
// negotiator in the transport sub-package.
package client
