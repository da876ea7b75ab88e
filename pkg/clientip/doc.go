// Package clientip resolves the originating client address of an HTTP
// request.
//
// A Resolver walks a configured list of proxy headers (X-Forwarded-For style
// chains are split and the left-most valid address wins) and falls back to
// the TCP peer address. Addresses are normalized: IPv4-mapped IPv6 values are
// unmapped and zones are dropped. Invalid values are skipped.
//
// # Usage
//
//	ips := clientip.New(clientip.DefaultHeaders...)
//	r.Use(ips.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// Only trust forwarded headers when a proxy in front of the service
// overwrites them. Build the resolver with no headers otherwise.
package clientip
