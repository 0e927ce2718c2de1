// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: toolregistry.proto

package toolsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GetToolRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetToolRequest) Reset() {
	*x = GetToolRequest{}
	mi := &file_toolregistry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetToolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetToolRequest) ProtoMessage() {}

func (x *GetToolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_toolregistry_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetToolRequest.ProtoReflect.Descriptor instead.
func (*GetToolRequest) Descriptor() ([]byte, []int) {
	return file_toolregistry_proto_rawDescGZIP(), []int{0}
}

func (x *GetToolRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type GetToolResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tool          *ToolDefinition        `protobuf:"bytes,1,opt,name=tool,proto3" json:"tool,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetToolResponse) Reset() {
	*x = GetToolResponse{}
	mi := &file_toolregistry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetToolResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetToolResponse) ProtoMessage() {}

func (x *GetToolResponse) ProtoReflect() protoreflect.Message {
	mi := &file_toolregistry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetToolResponse.ProtoReflect.Descriptor instead.
func (*GetToolResponse) Descriptor() ([]byte, []int) {
	return file_toolregistry_proto_rawDescGZIP(), []int{1}
}

func (x *GetToolResponse) GetTool() *ToolDefinition {
	if x != nil {
		return x.Tool
	}
	return nil
}

type ListToolsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional service filter (e.g. "Oura", "Gmail").
	Service       string `protobuf:"bytes,1,opt,name=service,proto3" json:"service,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListToolsRequest) Reset() {
	*x = ListToolsRequest{}
	mi := &file_toolregistry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListToolsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListToolsRequest) ProtoMessage() {}

func (x *ListToolsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_toolregistry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListToolsRequest.ProtoReflect.Descriptor instead.
func (*ListToolsRequest) Descriptor() ([]byte, []int) {
	return file_toolregistry_proto_rawDescGZIP(), []int{2}
}

func (x *ListToolsRequest) GetService() string {
	if x != nil {
		return x.Service
	}
	return ""
}

type ListToolsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tools         []*ToolDefinition      `protobuf:"bytes,1,rep,name=tools,proto3" json:"tools,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListToolsResponse) Reset() {
	*x = ListToolsResponse{}
	mi := &file_toolregistry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListToolsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListToolsResponse) ProtoMessage() {}

func (x *ListToolsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_toolregistry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListToolsResponse.ProtoReflect.Descriptor instead.
func (*ListToolsResponse) Descriptor() ([]byte, []int) {
	return file_toolregistry_proto_rawDescGZIP(), []int{3}
}

func (x *ListToolsResponse) GetTools() []*ToolDefinition {
	if x != nil {
		return x.Tools
	}
	return nil
}

type ToolDefinition struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Name        string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	// JSON schema for parameters.
	ParametersSchema string `protobuf:"bytes,3,opt,name=parameters_schema,json=parametersSchema,proto3" json:"parameters_schema,omitempty"`
	// Description of the return value shape.
	ReturnsSchema string `protobuf:"bytes,4,opt,name=returns_schema,json=returnsSchema,proto3" json:"returns_schema,omitempty"`
	// Service the tool belongs to (e.g. "Oura").
	Service string `protobuf:"bytes,5,opt,name=service,proto3" json:"service,omitempty"`
	// Registry-side classification tags (e.g. "Health and Wellness").
	Tags          []string `protobuf:"bytes,6,rep,name=tags,proto3" json:"tags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolDefinition) Reset() {
	*x = ToolDefinition{}
	mi := &file_toolregistry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolDefinition) ProtoMessage() {}

func (x *ToolDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_toolregistry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolDefinition.ProtoReflect.Descriptor instead.
func (*ToolDefinition) Descriptor() ([]byte, []int) {
	return file_toolregistry_proto_rawDescGZIP(), []int{4}
}

func (x *ToolDefinition) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ToolDefinition) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ToolDefinition) GetParametersSchema() string {
	if x != nil {
		return x.ParametersSchema
	}
	return ""
}

func (x *ToolDefinition) GetReturnsSchema() string {
	if x != nil {
		return x.ReturnsSchema
	}
	return ""
}

func (x *ToolDefinition) GetService() string {
	if x != nil {
		return x.Service
	}
	return ""
}

func (x *ToolDefinition) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

type ExecuteToolRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Name  string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	// JSON-encoded parameter object.
	ParametersJson string `protobuf:"bytes,2,opt,name=parameters_json,json=parametersJson,proto3" json:"parameters_json,omitempty"`
	OwnerId        string `protobuf:"bytes,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	RequestId      string `protobuf:"bytes,4,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	// Marks automation-originated invocations for registry-side accounting.
	IsAutomation  bool `protobuf:"varint,5,opt,name=is_automation,json=isAutomation,proto3" json:"is_automation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteToolRequest) Reset() {
	*x = ExecuteToolRequest{}
	mi := &file_toolregistry_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteToolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteToolRequest) ProtoMessage() {}

func (x *ExecuteToolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_toolregistry_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteToolRequest.ProtoReflect.Descriptor instead.
func (*ExecuteToolRequest) Descriptor() ([]byte, []int) {
	return file_toolregistry_proto_rawDescGZIP(), []int{5}
}

func (x *ExecuteToolRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExecuteToolRequest) GetParametersJson() string {
	if x != nil {
		return x.ParametersJson
	}
	return ""
}

func (x *ExecuteToolRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExecuteToolRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ExecuteToolRequest) GetIsAutomation() bool {
	if x != nil {
		return x.IsAutomation
	}
	return false
}

type ExecuteToolResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// JSON-encoded return value (object, array, or scalar).
	ResultJson    string `protobuf:"bytes,1,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteToolResponse) Reset() {
	*x = ExecuteToolResponse{}
	mi := &file_toolregistry_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteToolResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteToolResponse) ProtoMessage() {}

func (x *ExecuteToolResponse) ProtoReflect() protoreflect.Message {
	mi := &file_toolregistry_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteToolResponse.ProtoReflect.Descriptor instead.
func (*ExecuteToolResponse) Descriptor() ([]byte, []int) {
	return file_toolregistry_proto_rawDescGZIP(), []int{6}
}

func (x *ExecuteToolResponse) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

var File_toolregistry_proto protoreflect.FileDescriptor

const file_toolregistry_proto_rawDesc = "" +
	"\n" +
	"\x12toolregistry.proto\x12\x0ftoolregistry.v1\"$\n" +
	"\x0eGetToolRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"F\n" +
	"\x0fGetToolResponse\x123\n" +
	"\x04tool\x18\x01 \x01(\v2\x1f.toolregistry.v1.ToolDefinitionR\x04tool\",\n" +
	"\x10ListToolsRequest\x12\x18\n" +
	"\aservice\x18\x01 \x01(\tR\aservice\"J\n" +
	"\x11ListToolsResponse\x125\n" +
	"\x05tools\x18\x01 \x03(\v2\x1f.toolregistry.v1.ToolDefinitionR\x05tools\"\xc8\x01\n" +
	"\x0eToolDefinition\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12+\n" +
	"\x11parameters_schema\x18\x03 \x01(\tR\x10parametersSchema\x12%\n" +
	"\x0ereturns_schema\x18\x04 \x01(\tR\rreturnsSchema\x12\x18\n" +
	"\aservice\x18\x05 \x01(\tR\aservice\x12\x12\n" +
	"\x04tags\x18\x06 \x03(\tR\x04tags\"\xb0\x01\n" +
	"\x12ExecuteToolRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12'\n" +
	"\x0fparameters_json\x18\x02 \x01(\tR\x0eparametersJson\x12\x19\n" +
	"\bowner_id\x18\x03 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"request_id\x18\x04 \x01(\tR\trequestId\x12#\n" +
	"\ris_automation\x18\x05 \x01(\bR\fisAutomation\"6\n" +
	"\x13ExecuteToolResponse\x12\x1f\n" +
	"\vresult_json\x18\x01 \x01(\tR\n" +
	"resultJson2\x91\x02\n" +
	"\x13ToolRegistryService\x12L\n" +
	"\aGetTool\x12\x1f.toolregistry.v1.GetToolRequest\x1a .toolregistry.v1.GetToolResponse\x12R\n" +
	"\tListTools\x12!.toolregistry.v1.ListToolsRequest\x1a\".toolregistry.v1.ListToolsResponse\x12X\n" +
	"\vExecuteTool\x12#.toolregistry.v1.ExecuteToolRequest\x1a$.toolregistry.v1.ExecuteToolResponseB2Z0github.com/triggerflow/triggerflow/proto;toolsv1b\x06proto3"

var (
	file_toolregistry_proto_rawDescOnce sync.Once
	file_toolregistry_proto_rawDescData []byte
)

func file_toolregistry_proto_rawDescGZIP() []byte {
	file_toolregistry_proto_rawDescOnce.Do(func() {
		file_toolregistry_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_toolregistry_proto_rawDesc), len(file_toolregistry_proto_rawDesc)))
	})
	return file_toolregistry_proto_rawDescData
}

var file_toolregistry_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_toolregistry_proto_goTypes = []any{
	(*GetToolRequest)(nil),      // 0: toolregistry.v1.GetToolRequest
	(*GetToolResponse)(nil),     // 1: toolregistry.v1.GetToolResponse
	(*ListToolsRequest)(nil),    // 2: toolregistry.v1.ListToolsRequest
	(*ListToolsResponse)(nil),   // 3: toolregistry.v1.ListToolsResponse
	(*ToolDefinition)(nil),      // 4: toolregistry.v1.ToolDefinition
	(*ExecuteToolRequest)(nil),  // 5: toolregistry.v1.ExecuteToolRequest
	(*ExecuteToolResponse)(nil), // 6: toolregistry.v1.ExecuteToolResponse
}
var file_toolregistry_proto_depIdxs = []int32{
	4, // 0: toolregistry.v1.GetToolResponse.tool:type_name -> toolregistry.v1.ToolDefinition
	4, // 1: toolregistry.v1.ListToolsResponse.tools:type_name -> toolregistry.v1.ToolDefinition
	0, // 2: toolregistry.v1.ToolRegistryService.GetTool:input_type -> toolregistry.v1.GetToolRequest
	2, // 3: toolregistry.v1.ToolRegistryService.ListTools:input_type -> toolregistry.v1.ListToolsRequest
	5, // 4: toolregistry.v1.ToolRegistryService.ExecuteTool:input_type -> toolregistry.v1.ExecuteToolRequest
	1, // 5: toolregistry.v1.ToolRegistryService.GetTool:output_type -> toolregistry.v1.GetToolResponse
	3, // 6: toolregistry.v1.ToolRegistryService.ListTools:output_type -> toolregistry.v1.ListToolsResponse
	6, // 7: toolregistry.v1.ToolRegistryService.ExecuteTool:output_type -> toolregistry.v1.ExecuteToolResponse
	5, // [5:8] is the sub-list for method output_type
	2, // [2:5] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_toolregistry_proto_init() }
func file_toolregistry_proto_init() {
	if File_toolregistry_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_toolregistry_proto_rawDesc), len(file_toolregistry_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_toolregistry_proto_goTypes,
		DependencyIndexes: file_toolregistry_proto_depIdxs,
		MessageInfos:      file_toolregistry_proto_msgTypes,
	}.Build()
	File_toolregistry_proto = out.File
	file_toolregistry_proto_goTypes = nil
	file_toolregistry_proto_depIdxs = nil
}
