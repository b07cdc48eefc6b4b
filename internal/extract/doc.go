// Package extract pulls verse text out of a parsed chapter page. A page is
// reduced to one content container, then an ordered chain of strategies is
// tried until one of them yields fragments.
package extract
