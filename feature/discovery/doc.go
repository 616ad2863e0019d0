// Package discovery keeps the mapping's key set in step with the channel.
//
// Every listed video id gets an (initially empty) entry so the mapping also records
// videos that have no assets yet.
package discovery
