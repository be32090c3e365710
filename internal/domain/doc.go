// Package domain defines the core business entities of the vocabulary
// learning portal: words, thematic groups, study activities, study sessions,
// and the per-word review records that drive progress statistics.
package domain
