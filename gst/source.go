package gst

/*
#cgo pkg-config: gstreamer-1.0

#include <gst/gst.h>

static gchar *go_gst_message_src_path(void *msg) {
	GstObject *src = GST_MESSAGE_SRC((GstMessage *) msg);
	if (src == NULL) {
		return NULL;
	}
	return gst_object_get_path_string(src);
}

static gboolean go_gst_message_src_is(void *msg, void *obj) {
	return GST_MESSAGE_SRC((GstMessage *) msg) == (GstObject *) obj;
}
*/
import "C"

import (
	"unsafe"

	gogst "github.com/go-gst/go-gst/gst"
)

// sourcePath returns the path of the object that posted msg, e.g.
// "/playbin/uridecodebin0", or its name if it has no path.
func sourcePath(msg *gogst.Message) string {
	path := C.go_gst_message_src_path(unsafe.Pointer(msg.Instance()))
	if path == nil {
		return msg.Source()
	}
	defer C.g_free(C.gpointer(unsafe.Pointer(path)))
	return C.GoString((*C.char)(unsafe.Pointer(path)))
}

// postedBy reports whether msg was posted by e itself.
func postedBy(msg *gogst.Message, e *gogst.Element) bool {
	return C.go_gst_message_src_is(unsafe.Pointer(msg.Instance()), unsafe.Pointer(e.GstObject())) != 0
}
