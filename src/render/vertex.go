package render

import (
	"unsafe"

	"github.com/vulkan-go/vulkan"

	"hapticgui/src/spatial/geometry"
)

// Byte strides of one position, relying on the geometry layout invariant:
// contiguous float32 fields, no padding.
const (
	Vec3Stride = uint32(unsafe.Sizeof(geometry.Vec3{}))
	Vec4Stride = uint32(unsafe.Sizeof(geometry.Vec4{}))
)

// VertexBinding describes a vertex buffer holding one geometry.Vec3 per
// vertex.
func VertexBinding(binding uint32) vulkan.VertexInputBindingDescription {
	return vulkan.VertexInputBindingDescription{
		Binding:   binding,
		Stride:    Vec3Stride,
		InputRate: vulkan.VertexInputRateVertex,
	}
}

// VertexAttribute describes a three-float attribute at the given offset
// within a binding from VertexBinding.
func VertexAttribute(location, binding, offset uint32) vulkan.VertexInputAttributeDescription {
	return vulkan.VertexInputAttributeDescription{
		Location: location,
		Binding:  binding,
		Format:   vulkan.FormatR32g32b32Sfloat,
		Offset:   offset,
	}
}

// Float32Data reinterprets verts as a flat float32 array in x, y, z order
// without copying. The view aliases the input slice.
func Float32Data(verts []geometry.Vec3) []float32 {
	if len(verts) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&verts[0])), len(verts)*3)
}

// ByteData reinterprets verts as raw bytes in host order, suitable for
// staging uploads. The view aliases the input slice.
func ByteData(verts []geometry.Vec3) []byte {
	if len(verts) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&verts[0])), len(verts)*int(Vec3Stride))
}

// WriteVertexBuffer copies verts into mapped device memory and returns the
// number of bytes written.
func WriteVertexBuffer(mem unsafe.Pointer, verts []geometry.Vec3) int {
	return vulkan.Memcopy(mem, ByteData(verts))
}
