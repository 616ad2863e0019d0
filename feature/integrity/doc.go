// Package integrity checks that the mapping and the asset bucket agree.
//
// A reference whose object is gone is reported as missing; an object under the
// asset prefix that no entry points to is an orphan. Orphans can be pruned from the
// CLI; the HTTP endpoint only reports.
package integrity
