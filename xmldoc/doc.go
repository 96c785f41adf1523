// SPDX-License-Identifier: MIT

// Package xmldoc maps grids, entries and answer keys to the XML payload a
// host document embeds:
//
//	<puzzle>
//	  <grid kind="rectangular-orthogonal" separator="block" numColumns="5"
//	        numRows="5" symmetry="rotate-half-turn">
//	    #....
//	    ...
//	  </grid>
//	  <entries><entry id="1a">ABCD</entry>...</entries>
//	  <solution encryption="salsa20" nonce="…hex…" hash="…hex…">base64…</solution>
//	</puzzle>
//
// A solution stored by reference carries location= and hash= and no body;
// package remote resolves it.
package xmldoc
