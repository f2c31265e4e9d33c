/*
Package report renders the events of a checking run.

Three formats are available. The text format is meant for people and mirrors
the classic console output: a header per file, one line per typo and a closing
summary block.

	-> src/main.rs
	  * wrold:0

	===SUCCESSFULLY FINISHED===
	->Files checked: 1
	->Dirs checked: 0
	->Typos found: 1
	->Errors: 0
	===THANKS FOR USING THIS SOFTWARE!===

The json and msgpack formats are meant for editors and other tools. Every
event becomes one record, written as soon as it happens, so a client can show
typos while a large tree is still being walked. JSON records are separated by
newlines:

	{"kind":"file","path":"src/main.rs"}
	{"kind":"typo","path":"src/main.rs","word":"wrold","token":"wrold","line":0}
	{"kind":"done","path":"src/main.rs"}
	{"kind":"summary","stats":{"files_checked":1,"dirs_checked":0,"typos":1,"errors":0}}

msgpack records carry the same fields under short keys:

	{"k": "typo", "p": "src/main.rs", "w": "wrold", "t": "wrold", "l": 0}

Line numbers are zero-based in every format.
*/
package report
