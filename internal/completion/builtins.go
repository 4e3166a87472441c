package completion

// FunctionMetadata describes one jq builtin offered for completion.
type FunctionMetadata struct {
	Name        string
	Signature   string
	Description string
	Category    string
}

// builtins is the jq 1.7 builtin set most useful at an interactive prompt.
var builtins = []FunctionMetadata{
	{Name: "add", Signature: "add", Description: "sum or concatenate array elements", Category: "list"},
	{Name: "all", Signature: "all, all(cond)", Description: "true if every element is truthy", Category: "list"},
	{Name: "any", Signature: "any, any(cond)", Description: "true if some element is truthy", Category: "list"},
	{Name: "arrays", Signature: "arrays", Description: "select arrays", Category: "general"},
	{Name: "ascii_downcase", Signature: "ascii_downcase", Description: "lowercase ASCII letters", Category: "string"},
	{Name: "ascii_upcase", Signature: "ascii_upcase", Description: "uppercase ASCII letters", Category: "string"},
	{Name: "booleans", Signature: "booleans", Description: "select booleans", Category: "general"},
	{Name: "capture", Signature: "capture(re; flags)", Description: "named regex groups as an object", Category: "regex"},
	{Name: "contains", Signature: "contains(b)", Description: "true if b is contained in the input", Category: "general"},
	{Name: "del", Signature: "del(path)", Description: "remove a path", Category: "map"},
	{Name: "delpaths", Signature: "delpaths(paths)", Description: "remove several paths", Category: "map"},
	{Name: "empty", Signature: "empty", Description: "produce no output", Category: "general"},
	{Name: "endswith", Signature: "endswith(s)", Description: "true if the input ends with s", Category: "string"},
	{Name: "env", Signature: "env", Description: "environment variables as an object", Category: "general"},
	{Name: "error", Signature: "error(msg)", Description: "raise an error", Category: "general"},
	{Name: "explode", Signature: "explode", Description: "string to codepoint array", Category: "string"},
	{Name: "first", Signature: "first, first(expr)", Description: "first element or output", Category: "list"},
	{Name: "flatten", Signature: "flatten, flatten(depth)", Description: "flatten nested arrays", Category: "list"},
	{Name: "floor", Signature: "floor", Description: "round down", Category: "math"},
	{Name: "from_entries", Signature: "from_entries", Description: "key/value array to object", Category: "map"},
	{Name: "fromdate", Signature: "fromdate", Description: "ISO 8601 string to epoch seconds", Category: "datetime"},
	{Name: "fromjson", Signature: "fromjson", Description: "parse a JSON string", Category: "conversion"},
	{Name: "getpath", Signature: "getpath(path)", Description: "value at a path array", Category: "map"},
	{Name: "group_by", Signature: "group_by(expr)", Description: "group array elements by key", Category: "list"},
	{Name: "gsub", Signature: "gsub(re; repl)", Description: "replace every regex match", Category: "regex"},
	{Name: "has", Signature: "has(key)", Description: "true if the key or index exists", Category: "map"},
	{Name: "implode", Signature: "implode", Description: "codepoint array to string", Category: "string"},
	{Name: "in", Signature: "in(obj)", Description: "true if the input key exists in obj", Category: "map"},
	{Name: "index", Signature: "index(s)", Description: "first index of s", Category: "string"},
	{Name: "indices", Signature: "indices(s)", Description: "every index of s", Category: "string"},
	{Name: "inside", Signature: "inside(b)", Description: "true if the input is contained in b", Category: "general"},
	{Name: "isempty", Signature: "isempty(expr)", Description: "true if expr produces no output", Category: "general"},
	{Name: "iterables", Signature: "iterables", Description: "select arrays and objects", Category: "general"},
	{Name: "join", Signature: "join(sep)", Description: "join strings with sep", Category: "string"},
	{Name: "keys", Signature: "keys", Description: "sorted object keys or array indices", Category: "map"},
	{Name: "keys_unsorted", Signature: "keys_unsorted", Description: "object keys in insertion order", Category: "map"},
	{Name: "last", Signature: "last, last(expr)", Description: "last element or output", Category: "list"},
	{Name: "leaf_paths", Signature: "leaf_paths", Description: "paths to scalar values", Category: "map"},
	{Name: "length", Signature: "length", Description: "length of a string, array or object", Category: "general"},
	{Name: "limit", Signature: "limit(n; expr)", Description: "first n outputs of expr", Category: "list"},
	{Name: "ltrimstr", Signature: "ltrimstr(s)", Description: "remove prefix s", Category: "string"},
	{Name: "map", Signature: "map(expr)", Description: "apply expr to each element", Category: "list"},
	{Name: "map_values", Signature: "map_values(expr)", Description: "apply expr to each value", Category: "map"},
	{Name: "match", Signature: "match(re; flags)", Description: "regex match objects", Category: "regex"},
	{Name: "max", Signature: "max", Description: "largest element", Category: "list"},
	{Name: "max_by", Signature: "max_by(expr)", Description: "element with the largest key", Category: "list"},
	{Name: "min", Signature: "min", Description: "smallest element", Category: "list"},
	{Name: "min_by", Signature: "min_by(expr)", Description: "element with the smallest key", Category: "list"},
	{Name: "not", Signature: "not", Description: "boolean negation", Category: "general"},
	{Name: "now", Signature: "now", Description: "current epoch seconds", Category: "datetime"},
	{Name: "nulls", Signature: "nulls", Description: "select nulls", Category: "general"},
	{Name: "numbers", Signature: "numbers", Description: "select numbers", Category: "general"},
	{Name: "objects", Signature: "objects", Description: "select objects", Category: "general"},
	{Name: "paths", Signature: "paths, paths(cond)", Description: "every path in the input", Category: "map"},
	{Name: "range", Signature: "range(upto), range(from; upto)", Description: "produce a range of numbers", Category: "math"},
	{Name: "recurse", Signature: "recurse, recurse(f)", Description: "walk every value", Category: "general"},
	{Name: "reverse", Signature: "reverse", Description: "reverse an array or string", Category: "list"},
	{Name: "rtrimstr", Signature: "rtrimstr(s)", Description: "remove suffix s", Category: "string"},
	{Name: "scalars", Signature: "scalars", Description: "select non-iterables", Category: "general"},
	{Name: "select", Signature: "select(cond)", Description: "keep inputs where cond is true", Category: "general"},
	{Name: "setpath", Signature: "setpath(path; value)", Description: "set the value at a path", Category: "map"},
	{Name: "sort", Signature: "sort", Description: "sort an array", Category: "list"},
	{Name: "sort_by", Signature: "sort_by(expr)", Description: "sort an array by key", Category: "list"},
	{Name: "split", Signature: "split(sep)", Description: "split a string", Category: "string"},
	{Name: "splits", Signature: "splits(re)", Description: "split a string by regex", Category: "regex"},
	{Name: "sqrt", Signature: "sqrt", Description: "square root", Category: "math"},
	{Name: "startswith", Signature: "startswith(s)", Description: "true if the input starts with s", Category: "string"},
	{Name: "strings", Signature: "strings", Description: "select strings", Category: "general"},
	{Name: "sub", Signature: "sub(re; repl)", Description: "replace the first regex match", Category: "regex"},
	{Name: "test", Signature: "test(re; flags)", Description: "true if the regex matches", Category: "regex"},
	{Name: "to_entries", Signature: "to_entries", Description: "object to key/value array", Category: "map"},
	{Name: "todate", Signature: "todate", Description: "epoch seconds to ISO 8601 string", Category: "datetime"},
	{Name: "tojson", Signature: "tojson", Description: "encode as a JSON string", Category: "conversion"},
	{Name: "tonumber", Signature: "tonumber", Description: "parse a number", Category: "conversion"},
	{Name: "tostring", Signature: "tostring", Description: "convert to a string", Category: "conversion"},
	{Name: "type", Signature: "type", Description: "name of the input type", Category: "general"},
	{Name: "unique", Signature: "unique", Description: "sorted distinct elements", Category: "list"},
	{Name: "unique_by", Signature: "unique_by(expr)", Description: "distinct elements by key", Category: "list"},
	{Name: "until", Signature: "until(cond; next)", Description: "apply next until cond holds", Category: "general"},
	{Name: "values", Signature: "values", Description: "select non-null values", Category: "general"},
	{Name: "walk", Signature: "walk(f)", Description: "apply f bottom-up to every value", Category: "general"},
	{Name: "while", Signature: "while(cond; update)", Description: "repeat update while cond holds", Category: "general"},
	{Name: "with_entries", Signature: "with_entries(f)", Description: "map over key/value pairs", Category: "map"},
}
