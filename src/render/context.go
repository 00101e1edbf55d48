package render

import (
	"github.com/vulkan-go/vulkan"
)

// SwapchainDimensions describes the size and format of the swapchain
// images.
type SwapchainDimensions struct {
	Width  uint32
	Height uint32
	Format vulkan.Format
}

// Context is the surface the vertex upload and draw paths need from the
// renderer that owns the vulkan instance.
type Context interface {
	SetOnPrepare(onPrepare func() error)
	SetOnCleanup(onCleanup func() error)
	SetOnInvalidate(onInvalidate func(imageIndex int) error)
	Device() vulkan.Device
	CommandBuffer() vulkan.CommandBuffer
	SwapchainDimensions() *SwapchainDimensions
	AcquireNextImage() (imageIndex int, outdated bool, err error)
	PresentImage(imageIndex int) (outdated bool, err error)
}
