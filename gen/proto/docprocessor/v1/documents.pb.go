// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docprocessor/v1/documents.proto

package docprocessorv1

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

type Document struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename           string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt            string                 `protobuf:"bytes,3,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	FileType           string                 `protobuf:"bytes,4,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	FileSize           int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	BatchId            string                 `protobuf:"bytes,6,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Status             string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	FailureCode        string                 `protobuf:"bytes,8,opt,name=failure_code,json=failureCode,proto3" json:"failure_code,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Summary            string                 `protobuf:"bytes,10,opt,name=summary,proto3" json:"summary,omitempty"`
	StructuredDataJson string                 `protobuf:"bytes,11,opt,name=structured_data_json,json=structuredDataJson,proto3" json:"structured_data_json,omitempty"`
	Category           string                 `protobuf:"bytes,12,opt,name=category,proto3" json:"category,omitempty"`
	FinancialType      string                 `protobuf:"bytes,13,opt,name=financial_type,json=financialType,proto3" json:"financial_type,omitempty"`
	CategoryConfidence float32                `protobuf:"fixed32,14,opt,name=category_confidence,json=categoryConfidence,proto3" json:"category_confidence,omitempty"`
	CategoryReasoning  string                 `protobuf:"bytes,15,opt,name=category_reasoning,json=categoryReasoning,proto3" json:"category_reasoning,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ProcessedAt        string                 `protobuf:"bytes,17,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Document) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetFailureCode() string {
	if x != nil {
		return x.FailureCode
	}
	return ""
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Document) GetStructuredDataJson() string {
	if x != nil {
		return x.StructuredDataJson
	}
	return ""
}

func (x *Document) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Document) GetFinancialType() string {
	if x != nil {
		return x.FinancialType
	}
	return ""
}

func (x *Document) GetCategoryConfidence() float32 {
	if x != nil {
		return x.CategoryConfidence
	}
	return 0
}

func (x *Document) GetCategoryReasoning() string {
	if x != nil {
		return x.CategoryReasoning
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type Batch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Total         int32                  `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
	DocumentIds   []string               `protobuf:"bytes,4,rep,name=document_ids,json=documentIds,proto3" json:"document_ids,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Batch) Reset() {
	*x = Batch{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Batch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Batch) ProtoMessage() {}

func (x *Batch) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Batch.ProtoReflect.Descriptor instead.
func (*Batch) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{1}
}

func (x *Batch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Batch) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Batch) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *Batch) GetDocumentIds() []string {
	if x != nil {
		return x.DocumentIds
	}
	return nil
}

func (x *Batch) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type FileUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileUpload) Reset() {
	*x = FileUpload{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileUpload) ProtoMessage() {}

func (x *FileUpload) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileUpload.ProtoReflect.Descriptor instead.
func (*FileUpload) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{2}
}

func (x *FileUpload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *FileUpload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	File          *FileUpload            `protobuf:"bytes,1,opt,name=file,proto3" json:"file,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitDocumentRequest) GetFile() *FileUpload {
	if x != nil {
		return x.File
	}
	return nil
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type SubmitBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Files         []*FileUpload          `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchRequest) Reset() {
	*x = SubmitBatchRequest{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchRequest) ProtoMessage() {}

func (x *SubmitBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchRequest.ProtoReflect.Descriptor instead.
func (*SubmitBatchRequest) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{5}
}

func (x *SubmitBatchRequest) GetFiles() []*FileUpload {
	if x != nil {
		return x.Files
	}
	return nil
}

type SubmitBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *Batch                 `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchResponse) Reset() {
	*x = SubmitBatchResponse{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchResponse) ProtoMessage() {}

func (x *SubmitBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchResponse.ProtoReflect.Descriptor instead.
func (*SubmitBatchResponse) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitBatchResponse) GetBatch() *Batch {
	if x != nil {
		return x.Batch
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{8}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{9}
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{10}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{12}
}

type GetBatchStatusRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	IncludeDocuments bool                   `protobuf:"varint,2,opt,name=include_documents,json=includeDocuments,proto3" json:"include_documents,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetBatchStatusRequest) Reset() {
	*x = GetBatchStatusRequest{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusRequest) ProtoMessage() {}

func (x *GetBatchStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusRequest.ProtoReflect.Descriptor instead.
func (*GetBatchStatusRequest) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{13}
}

func (x *GetBatchStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetBatchStatusRequest) GetIncludeDocuments() bool {
	if x != nil {
		return x.IncludeDocuments
	}
	return false
}

type GetBatchStatusResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Batch                *Batch                 `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	CompletedCount       int32                  `protobuf:"varint,2,opt,name=completed_count,json=completedCount,proto3" json:"completed_count,omitempty"`
	FailedCount          int32                  `protobuf:"varint,3,opt,name=failed_count,json=failedCount,proto3" json:"failed_count,omitempty"`
	CompletionPercentage float64                `protobuf:"fixed64,4,opt,name=completion_percentage,json=completionPercentage,proto3" json:"completion_percentage,omitempty"`
	Documents            []*Document            `protobuf:"bytes,5,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *GetBatchStatusResponse) Reset() {
	*x = GetBatchStatusResponse{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusResponse) ProtoMessage() {}

func (x *GetBatchStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusResponse.ProtoReflect.Descriptor instead.
func (*GetBatchStatusResponse) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{14}
}

func (x *GetBatchStatusResponse) GetBatch() *Batch {
	if x != nil {
		return x.Batch
	}
	return nil
}

func (x *GetBatchStatusResponse) GetCompletedCount() int32 {
	if x != nil {
		return x.CompletedCount
	}
	return 0
}

func (x *GetBatchStatusResponse) GetFailedCount() int32 {
	if x != nil {
		return x.FailedCount
	}
	return 0
}

func (x *GetBatchStatusResponse) GetCompletionPercentage() float64 {
	if x != nil {
		return x.CompletionPercentage
	}
	return 0
}

func (x *GetBatchStatusResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBatchRequest) Reset() {
	*x = DeleteBatchRequest{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBatchRequest) ProtoMessage() {}

func (x *DeleteBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBatchRequest.ProtoReflect.Descriptor instead.
func (*DeleteBatchRequest) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteBatchRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBatchResponse) Reset() {
	*x = DeleteBatchResponse{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBatchResponse) ProtoMessage() {}

func (x *DeleteBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBatchResponse.ProtoReflect.Descriptor instead.
func (*DeleteBatchResponse) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{16}
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	OnlyCompleted bool                   `protobuf:"varint,2,opt,name=only_completed,json=onlyCompleted,proto3" json:"only_completed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{17}
}

func (x *ExportDocumentsRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *ExportDocumentsRequest) GetOnlyCompleted() bool {
	if x != nil {
		return x.OnlyCompleted
	}
	return false
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_docprocessor_v1_documents_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docprocessor_v1_documents_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docprocessor_v1_documents_proto_rawDescGZIP(), []int{18}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_docprocessor_v1_documents_proto protoreflect.FileDescriptor

const file_docprocessor_v1_documents_proto_rawDesc = "" +
	"\n" +
	"\x1fdocprocessor/v1/documents.proto\x12\x0fdocprocessor.v1\"\xb7\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x03 \x01(\tR\afileExt\x12\x1b\n" +
	"\tfile_type\x18\x04 \x01(\tR\bfileType\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12\x19\n" +
	"\bbatch_id\x18\x06 \x01(\tR\abatchId\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12!\n" +
	"\ffailure_code\x18\b \x01(\tR\vfailureCode\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12\x18\n" +
	"\asummary\x18\n" +
	" \x01(\tR\asummary\x120\n" +
	"\x14structured_data_json\x18\v \x01(\tR\x12structuredDataJson\x12\x1a\n" +
	"\bcategory\x18\f \x01(\tR\bcategory\x12%\n" +
	"\x0efinancial_type\x18\r \x01(\tR\rfinancialType\x12/\n" +
	"\x13category_confidence\x18\x0e \x01(\x02R\x12categoryConfidence\x12-\n" +
	"\x12category_reasoning\x18\x0f \x01(\tR\x11categoryReasoning\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12!\n" +
	"\fprocessed_at\x18\x11 \x01(\tR\vprocessedAt\"\x87\x01\n" +
	"\x05Batch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05total\x18\x03 \x01(\x05R\x05total\x12!\n" +
	"\fdocument_ids\x18\x04 \x03(\tR\vdocumentIds\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"B\n" +
	"\n" +
	"FileUpload\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"H\n" +
	"\x15SubmitDocumentRequest\x12/\n" +
	"\x04file\x18\x01 \x01(\v2\x1b.docprocessor.v1.FileUploadR\x04file\"O\n" +
	"\x16SubmitDocumentResponse\x125\n" +
	"\bdocument\x18\x01 \x01(\v2\x19.docprocessor.v1.DocumentR\bdocument\"G\n" +
	"\x12SubmitBatchRequest\x121\n" +
	"\x05files\x18\x01 \x03(\v2\x1b.docprocessor.v1.FileUploadR\x05files\"C\n" +
	"\x13SubmitBatchResponse\x12,\n" +
	"\x05batch\x18\x01 \x01(\v2\x16.docprocessor.v1.BatchR\x05batch\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"L\n" +
	"\x13GetDocumentResponse\x125\n" +
	"\bdocument\x18\x01 \x01(\v2\x19.docprocessor.v1.DocumentR\bdocument\"\x16\n" +
	"\x14ListDocumentsRequest\"P\n" +
	"\x15ListDocumentsResponse\x127\n" +
	"\tdocuments\x18\x01 \x03(\v2\x19.docprocessor.v1.DocumentR\tdocuments\"'\n" +
	"\x15DeleteDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteDocumentResponse\"T\n" +
	"\x15GetBatchStatusRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12+\n" +
	"\x11include_documents\x18\x02 \x01(\bR\x10includeDocuments\"\x80\x02\n" +
	"\x16GetBatchStatusResponse\x12,\n" +
	"\x05batch\x18\x01 \x01(\v2\x16.docprocessor.v1.BatchR\x05batch\x12'\n" +
	"\x0fcompleted_count\x18\x02 \x01(\x05R\x0ecompletedCount\x12!\n" +
	"\ffailed_count\x18\x03 \x01(\x05R\vfailedCount\x123\n" +
	"\x15completion_percentage\x18\x04 \x01(\x01R\x14completionPercentage\x127\n" +
	"\tdocuments\x18\x05 \x03(\v2\x19.docprocessor.v1.DocumentR\tdocuments\"$\n" +
	"\x12DeleteBatchRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x15\n" +
	"\x13DeleteBatchResponse\"Z\n" +
	"\x16ExportDocumentsRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12%\n" +
	"\x0eonly_completed\x18\x02 \x01(\bR\ronlyCompleted\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x92\x03\n" +
	"\x10DocumentsService\x12a\n" +
	"\x0eSubmitDocument\x12&.docprocessor.v1.SubmitDocumentRequest\x1a'.docprocessor.v1.SubmitDocumentResponse\x12X\n" +
	"\vGetDocument\x12#.docprocessor.v1.GetDocumentRequest\x1a$.docprocessor.v1.GetDocumentResponse\x12^\n" +
	"\rListDocuments\x12%.docprocessor.v1.ListDocumentsRequest\x1a&.docprocessor.v1.ListDocumentsResponse\x12a\n" +
	"\x0eDeleteDocument\x12&.docprocessor.v1.DeleteDocumentRequest\x1a'.docprocessor.v1.DeleteDocumentResponse2\xa7\x02\n" +
	"\x0eBatchesService\x12X\n" +
	"\vSubmitBatch\x12#.docprocessor.v1.SubmitBatchRequest\x1a$.docprocessor.v1.SubmitBatchResponse\x12a\n" +
	"\x0eGetBatchStatus\x12&.docprocessor.v1.GetBatchStatusRequest\x1a'.docprocessor.v1.GetBatchStatusResponse\x12X\n" +
	"\vDeleteBatch\x12#.docprocessor.v1.DeleteBatchRequest\x1a$.docprocessor.v1.DeleteBatchResponse2u\n" +
	"\rExportService\x12d\n" +
	"\x0fExportDocuments\x12'.docprocessor.v1.ExportDocumentsRequest\x1a(.docprocessor.v1.ExportDocumentsResponseBPZNgithub.com/asharhb/document-processor/gen/proto/docprocessor/v1;docprocessorv1b\x06proto3"

var (
	file_docprocessor_v1_documents_proto_rawDescOnce sync.Once
	file_docprocessor_v1_documents_proto_rawDescData []byte
)

func file_docprocessor_v1_documents_proto_rawDescGZIP() []byte {
	file_docprocessor_v1_documents_proto_rawDescOnce.Do(func() {
		file_docprocessor_v1_documents_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docprocessor_v1_documents_proto_rawDesc), len(file_docprocessor_v1_documents_proto_rawDesc)))
	})
	return file_docprocessor_v1_documents_proto_rawDescData
}

var file_docprocessor_v1_documents_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_docprocessor_v1_documents_proto_goTypes = []any{
	(*Document)(nil),                // 0: docprocessor.v1.Document
	(*Batch)(nil),                   // 1: docprocessor.v1.Batch
	(*FileUpload)(nil),              // 2: docprocessor.v1.FileUpload
	(*SubmitDocumentRequest)(nil),   // 3: docprocessor.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),  // 4: docprocessor.v1.SubmitDocumentResponse
	(*SubmitBatchRequest)(nil),      // 5: docprocessor.v1.SubmitBatchRequest
	(*SubmitBatchResponse)(nil),     // 6: docprocessor.v1.SubmitBatchResponse
	(*GetDocumentRequest)(nil),      // 7: docprocessor.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),     // 8: docprocessor.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),    // 9: docprocessor.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),   // 10: docprocessor.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),   // 11: docprocessor.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),  // 12: docprocessor.v1.DeleteDocumentResponse
	(*GetBatchStatusRequest)(nil),   // 13: docprocessor.v1.GetBatchStatusRequest
	(*GetBatchStatusResponse)(nil),  // 14: docprocessor.v1.GetBatchStatusResponse
	(*DeleteBatchRequest)(nil),      // 15: docprocessor.v1.DeleteBatchRequest
	(*DeleteBatchResponse)(nil),     // 16: docprocessor.v1.DeleteBatchResponse
	(*ExportDocumentsRequest)(nil),  // 17: docprocessor.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 18: docprocessor.v1.ExportDocumentsResponse
}
var file_docprocessor_v1_documents_proto_depIdxs = []int32{
	2,  // 0: docprocessor.v1.SubmitDocumentRequest.file:type_name -> docprocessor.v1.FileUpload
	0,  // 1: docprocessor.v1.SubmitDocumentResponse.document:type_name -> docprocessor.v1.Document
	2,  // 2: docprocessor.v1.SubmitBatchRequest.files:type_name -> docprocessor.v1.FileUpload
	1,  // 3: docprocessor.v1.SubmitBatchResponse.batch:type_name -> docprocessor.v1.Batch
	0,  // 4: docprocessor.v1.GetDocumentResponse.document:type_name -> docprocessor.v1.Document
	0,  // 5: docprocessor.v1.ListDocumentsResponse.documents:type_name -> docprocessor.v1.Document
	1,  // 6: docprocessor.v1.GetBatchStatusResponse.batch:type_name -> docprocessor.v1.Batch
	0,  // 7: docprocessor.v1.GetBatchStatusResponse.documents:type_name -> docprocessor.v1.Document
	3,  // 8: docprocessor.v1.DocumentsService.SubmitDocument:input_type -> docprocessor.v1.SubmitDocumentRequest
	7,  // 9: docprocessor.v1.DocumentsService.GetDocument:input_type -> docprocessor.v1.GetDocumentRequest
	9,  // 10: docprocessor.v1.DocumentsService.ListDocuments:input_type -> docprocessor.v1.ListDocumentsRequest
	11, // 11: docprocessor.v1.DocumentsService.DeleteDocument:input_type -> docprocessor.v1.DeleteDocumentRequest
	5,  // 12: docprocessor.v1.BatchesService.SubmitBatch:input_type -> docprocessor.v1.SubmitBatchRequest
	13, // 13: docprocessor.v1.BatchesService.GetBatchStatus:input_type -> docprocessor.v1.GetBatchStatusRequest
	15, // 14: docprocessor.v1.BatchesService.DeleteBatch:input_type -> docprocessor.v1.DeleteBatchRequest
	17, // 15: docprocessor.v1.ExportService.ExportDocuments:input_type -> docprocessor.v1.ExportDocumentsRequest
	4,  // 16: docprocessor.v1.DocumentsService.SubmitDocument:output_type -> docprocessor.v1.SubmitDocumentResponse
	8,  // 17: docprocessor.v1.DocumentsService.GetDocument:output_type -> docprocessor.v1.GetDocumentResponse
	10, // 18: docprocessor.v1.DocumentsService.ListDocuments:output_type -> docprocessor.v1.ListDocumentsResponse
	12, // 19: docprocessor.v1.DocumentsService.DeleteDocument:output_type -> docprocessor.v1.DeleteDocumentResponse
	6,  // 20: docprocessor.v1.BatchesService.SubmitBatch:output_type -> docprocessor.v1.SubmitBatchResponse
	14, // 21: docprocessor.v1.BatchesService.GetBatchStatus:output_type -> docprocessor.v1.GetBatchStatusResponse
	16, // 22: docprocessor.v1.BatchesService.DeleteBatch:output_type -> docprocessor.v1.DeleteBatchResponse
	18, // 23: docprocessor.v1.ExportService.ExportDocuments:output_type -> docprocessor.v1.ExportDocumentsResponse
	16, // [16:24] is the sub-list for method output_type
	8,  // [8:16] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_docprocessor_v1_documents_proto_init() }
func file_docprocessor_v1_documents_proto_init() {
	if File_docprocessor_v1_documents_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docprocessor_v1_documents_proto_rawDesc), len(file_docprocessor_v1_documents_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_docprocessor_v1_documents_proto_goTypes,
		DependencyIndexes: file_docprocessor_v1_documents_proto_depIdxs,
		MessageInfos:      file_docprocessor_v1_documents_proto_msgTypes,
	}.Build()
	File_docprocessor_v1_documents_proto = out.File
	file_docprocessor_v1_documents_proto_goTypes = nil
	file_docprocessor_v1_documents_proto_depIdxs = nil
}
