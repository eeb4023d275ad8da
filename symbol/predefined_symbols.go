package symbol

// Size is the name of the sole builtin function this core wires up: a
// unary File -> Int that stats a file and reports its size in bytes.
var Size = Intern("size")
