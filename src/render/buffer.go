package render

import (
	"unsafe"

	"github.com/vulkan-go/vulkan"

	"hapticgui/src/spatial/geometry"
)

// NewVertexBuffer creates an exclusive vertex buffer sized for vertexCount
// geometry.Vec3 positions. The caller owns the buffer and its memory
// binding.
func NewVertexBuffer(device vulkan.Device, vertexCount int) (vulkan.Buffer, error) {
	info := vulkan.BufferCreateInfo{
		SType:       vulkan.StructureTypeBufferCreateInfo,
		Size:        vulkan.DeviceSize(uint32(vertexCount) * Vec3Stride),
		Usage:       vulkan.BufferUsageFlags(vulkan.BufferUsageVertexBufferBit),
		SharingMode: vulkan.SharingModeExclusive,
	}

	var buf vulkan.Buffer
	if ret := vulkan.CreateBuffer(device, &info, nil, &buf); IsError(ret) {
		return buf, NewError(ret)
	}
	return buf, nil
}

// UploadVertices maps the buffer memory, writes verts, and unmaps.
func UploadVertices(device vulkan.Device, mem vulkan.DeviceMemory, verts []geometry.Vec3) error {
	size := vulkan.DeviceSize(uint32(len(verts)) * Vec3Stride)

	var data unsafe.Pointer
	if ret := vulkan.MapMemory(device, mem, 0, size, 0, &data); IsError(ret) {
		return NewError(ret)
	}
	defer vulkan.UnmapMemory(device, mem)

	WriteVertexBuffer(data, verts)
	return nil
}

// RecordDraw binds buf as vertex input on the context's command buffer and
// records a non-instanced draw of vertexCount vertices.
func RecordDraw(ctx Context, buf vulkan.Buffer, vertexCount int) {
	cmd := ctx.CommandBuffer()
	vulkan.CmdBindVertexBuffers(cmd, 0, 1, []vulkan.Buffer{buf}, []vulkan.DeviceSize{0})
	vulkan.CmdDraw(cmd, uint32(vertexCount), 1, 0, 0)
}
