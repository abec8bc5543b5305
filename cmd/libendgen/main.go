// Command libendgen builds the End generator as a C shared library:
//
//	go build -buildmode=c-shared -o libendgen.so ./cmd/libendgen
//
// Generators are passed to C as opaque handles. Every handle returned by
// create_new_end must be released exactly once using delete_end.
package main

/*
#include <stdint.h>

typedef enum {
	Default = 0,
	TheEnd = 9,
	SmallEndIslands = 40,
	EndMidlands = 41,
	EndHighlands = 42,
	EndBarrens = 43
} EndBiomes;
*/
import "C"

//export create_new_end
func create_new_end(seed C.uint64_t) C.uintptr_t {
	return C.uintptr_t(newHandle(uint64(seed)))
}

//export get_biome
func get_biome(h C.uintptr_t, x, y, z C.int32_t) C.EndBiomes {
	return C.EndBiomes(biomeAt(uintptr(h), int32(x), int32(y), int32(z)))
}

//export get_biome_2d
func get_biome_2d(h C.uintptr_t, x, z C.int32_t) C.EndBiomes {
	return C.EndBiomes(biome2DAt(uintptr(h), int32(x), int32(z)))
}

// delete_end is named so that it does not clash with the C++ keyword delete.
//
//export delete_end
func delete_end(h C.uintptr_t) {
	release(uintptr(h))
}

func main() {}
