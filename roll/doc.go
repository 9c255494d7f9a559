/*

Process of rolling

Roll Definition Text ->
	parse ->
Expression Tree (ast) ->
	eval ->
Roll Value

Expression Tree (ast) ->
	format ->
Canonical Roll Definition Text

*/
package roll
