// Package oslc provides a client for the Open Services for Lifecycle
// Collaboration (OSLC) REST/RDF protocol exposed by enterprise
// application-lifecycle servers.
//
// The package glues the generic resource model in the resource and graph
// packages with the authenticated transport and the orchestrating client:
//  1. NewClient – returns a fully configured client instance and
//  2. client.Use – resolves a server/project/domain triple into the
//     project's service provider, whose capability endpoints back the
//     client's query and CRUD operations.
//
// The constructor accepts an options structure that can be populated from
// configuration files (see LoadOptions), making it straightforward to point
// the client at servers requiring form, token-realm or basic
// authentication.
//
// Example:
//
//	cli, _ := oslc.NewClient(ctx, &oslc.ClientOptions{ /* … */ }, logger)
//	provider, _ := cli.Use(ctx, "https://host/ccm", "Team X", schema.DomainCM)
package oslc
