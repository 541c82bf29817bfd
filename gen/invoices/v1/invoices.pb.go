// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicespb

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

// Invoice is the stored, reconciled invoice record.
// Dates are YYYY-MM-DD; timestamps are RFC3339; amount is a decimal string.
type Invoice struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId          string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	InvoiceNumber      string                 `protobuf:"bytes,3,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate        string                 `protobuf:"bytes,4,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"`
	DueDate            string                 `protobuf:"bytes,5,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	Amount             string                 `protobuf:"bytes,6,opt,name=amount,proto3" json:"amount,omitempty"`
	Provider           string                 `protobuf:"bytes,7,opt,name=provider,proto3" json:"provider,omitempty"`
	InvoiceType        string                 `protobuf:"bytes,8,opt,name=invoice_type,json=invoiceType,proto3" json:"invoice_type,omitempty"`
	Unit               string                 `protobuf:"bytes,9,opt,name=unit,proto3" json:"unit,omitempty"`
	Period             string                 `protobuf:"bytes,10,opt,name=period,proto3" json:"period,omitempty"`
	Consumption        string                 `protobuf:"bytes,11,opt,name=consumption,proto3" json:"consumption,omitempty"`
	AccountNumber      string                 `protobuf:"bytes,12,opt,name=account_number,json=accountNumber,proto3" json:"account_number,omitempty"`
	InstallationNumber string                 `protobuf:"bytes,13,opt,name=installation_number,json=installationNumber,proto3" json:"installation_number,omitempty"`
	CustomerNumber     string                 `protobuf:"bytes,14,opt,name=customer_number,json=customerNumber,proto3" json:"customer_number,omitempty"`
	FullName           string                 `protobuf:"bytes,15,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Address            string                 `protobuf:"bytes,16,opt,name=address,proto3" json:"address,omitempty"`
	ConsumerGroup      string                 `protobuf:"bytes,17,opt,name=consumer_group,json=consumerGroup,proto3" json:"consumer_group,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,18,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          string                 `protobuf:"bytes,19,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Invoice) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Invoice) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *Invoice) GetInvoiceType() string {
	if x != nil {
		return x.InvoiceType
	}
	return ""
}

func (x *Invoice) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *Invoice) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *Invoice) GetConsumption() string {
	if x != nil {
		return x.Consumption
	}
	return ""
}

func (x *Invoice) GetAccountNumber() string {
	if x != nil {
		return x.AccountNumber
	}
	return ""
}

func (x *Invoice) GetInstallationNumber() string {
	if x != nil {
		return x.InstallationNumber
	}
	return ""
}

func (x *Invoice) GetCustomerNumber() string {
	if x != nil {
		return x.CustomerNumber
	}
	return ""
}

func (x *Invoice) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Invoice) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Invoice) GetConsumerGroup() string {
	if x != nil {
		return x.ConsumerGroup
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ExtractInvoiceRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProfileId string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	// Absolute or daemon-relative path to a PDF or image file.
	Path          string `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractInvoiceRequest) Reset() {
	*x = ExtractInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractInvoiceRequest) ProtoMessage() {}

func (x *ExtractInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ExtractInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractInvoiceRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExtractInvoiceRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ExtractInvoiceResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	JobId  string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	FileId string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	// Canonical extraction output as JSON, also persisted on the job.
	ExtractedJson string  `protobuf:"bytes,3,opt,name=extracted_json,json=extractedJson,proto3" json:"extracted_json,omitempty"`
	Confidence    float32 `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview   bool    `protobuf:"varint,5,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	Warning       string  `protobuf:"bytes,6,opt,name=warning,proto3" json:"warning,omitempty"`
	// Set when the extraction was complete enough to upsert an invoice row.
	Invoice       *Invoice `protobuf:"bytes,7,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractInvoiceResponse) Reset() {
	*x = ExtractInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractInvoiceResponse) ProtoMessage() {}

func (x *ExtractInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ExtractInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractInvoiceResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExtractInvoiceResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ExtractInvoiceResponse) GetExtractedJson() string {
	if x != nil {
		return x.ExtractedJson
	}
	return ""
}

func (x *ExtractInvoiceResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractInvoiceResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ExtractInvoiceResponse) GetWarning() string {
	if x != nil {
		return x.Warning
	}
	return ""
}

func (x *ExtractInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type GetInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceRequest) Reset() {
	*x = GetInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceRequest) ProtoMessage() {}

func (x *GetInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *GetInvoiceRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceResponse) Reset() {
	*x = GetInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceResponse) ProtoMessage() {}

func (x *GetInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceResponse.ProtoReflect.Descriptor instead.
func (*GetInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *GetInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *ListInvoicesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

func (x *ExportInvoicesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *IngestFileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{10}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{11}
}

func (x *IngestDirectoryRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{12}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\"\xdf\x04\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12%\n" +
	"\x0einvoice_number\x18\x03 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\x04 \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\x05 \x01(\tR\adueDate\x12\x16\n" +
	"\x06amount\x18\x06 \x01(\tR\x06amount\x12\x1a\n" +
	"\bprovider\x18\a \x01(\tR\bprovider\x12!\n" +
	"\finvoice_type\x18\b \x01(\tR\vinvoiceType\x12\x12\n" +
	"\x04unit\x18\t \x01(\tR\x04unit\x12\x16\n" +
	"\x06period\x18\n" +
	" \x01(\tR\x06period\x12 \n" +
	"\vconsumption\x18\v \x01(\tR\vconsumption\x12%\n" +
	"\x0eaccount_number\x18\f \x01(\tR\raccountNumber\x12/\n" +
	"\x13installation_number\x18\r \x01(\tR\x12installationNumber\x12'\n" +
	"\x0fcustomer_number\x18\x0e \x01(\tR\x0ecustomerNumber\x12\x1b\n" +
	"\tfull_name\x18\x0f \x01(\tR\bfullName\x12\x18\n" +
	"\aaddress\x18\x10 \x01(\tR\aaddress\x12%\n" +
	"\x0econsumer_group\x18\x11 \x01(\tR\rconsumerGroup\x12\x1d\n" +
	"\n" +
	"created_at\x18\x12 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x13 \x01(\tR\tupdatedAt\"J\n" +
	"\x15ExtractInvoiceRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xfc\x01\n" +
	"\x16ExtractInvoiceResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12%\n" +
	"\x0eextracted_json\x18\x03 \x01(\tR\rextractedJson\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x02R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\x05 \x01(\bR\vneedsReview\x12\x18\n" +
	"\awarning\x18\x06 \x01(\tR\awarning\x12.\n" +
	"\ainvoice\x18\a \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"#\n" +
	"\x11GetInvoiceRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"D\n" +
	"\x12GetInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"j\n" +
	"\x13ListInvoicesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"H\n" +
	"\x14ListInvoicesResponse\x120\n" +
	"\binvoices\x18\x01 \x03(\v2\x14.invoices.v1.InvoiceR\binvoices\"l\n" +
	"\x15ExportInvoicesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"F\n" +
	"\x11IngestFileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"u\n" +
	"\x16IngestDirectoryRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xde\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x125\n" +
	"\aresults\x18\x06 \x03(\v2\x1b.invoices.v1.IngestResponseR\aresults2\x90\x02\n" +
	"\x0fInvoicesService\x12Y\n" +
	"\x0eExtractInvoice\x12\".invoices.v1.ExtractInvoiceRequest\x1a#.invoices.v1.ExtractInvoiceResponse\x12M\n" +
	"\n" +
	"GetInvoice\x12\x1e.invoices.v1.GetInvoiceRequest\x1a\x1f.invoices.v1.GetInvoiceResponse\x12S\n" +
	"\fListInvoices\x12 .invoices.v1.ListInvoicesRequest\x1a!.invoices.v1.ListInvoicesResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportInvoices\x12\".invoices.v1.ExportInvoicesRequest\x1a#.invoices.v1.ExportInvoicesResponse2\xbb\x01\n" +
	"\x10IngestionService\x12I\n" +
	"\n" +
	"IngestFile\x12\x1e.invoices.v1.IngestFileRequest\x1a\x1b.invoices.v1.IngestResponse\x12\\\n" +
	"\x0fIngestDirectory\x12#.invoices.v1.IngestDirectoryRequest\x1a$.invoices.v1.IngestDirectoryResponseBBZ@github.com/enerjitakip/fatura-extract/gen/invoices/v1;invoicespbb\x06proto3"

var (
	file_invoices_v1_invoices_proto_rawDescOnce sync.Once
	file_invoices_v1_invoices_proto_rawDescData []byte
)

func file_invoices_v1_invoices_proto_rawDescGZIP() []byte {
	file_invoices_v1_invoices_proto_rawDescOnce.Do(func() {
		file_invoices_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)))
	})
	return file_invoices_v1_invoices_proto_rawDescData
}

var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(*Invoice)(nil),                 // 0: invoices.v1.Invoice
	(*ExtractInvoiceRequest)(nil),   // 1: invoices.v1.ExtractInvoiceRequest
	(*ExtractInvoiceResponse)(nil),  // 2: invoices.v1.ExtractInvoiceResponse
	(*GetInvoiceRequest)(nil),       // 3: invoices.v1.GetInvoiceRequest
	(*GetInvoiceResponse)(nil),      // 4: invoices.v1.GetInvoiceResponse
	(*ListInvoicesRequest)(nil),     // 5: invoices.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),    // 6: invoices.v1.ListInvoicesResponse
	(*ExportInvoicesRequest)(nil),   // 7: invoices.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil),  // 8: invoices.v1.ExportInvoicesResponse
	(*IngestFileRequest)(nil),       // 9: invoices.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 10: invoices.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 11: invoices.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 12: invoices.v1.IngestDirectoryResponse
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	0,  // 0: invoices.v1.ExtractInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 1: invoices.v1.GetInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 2: invoices.v1.ListInvoicesResponse.invoices:type_name -> invoices.v1.Invoice
	10, // 3: invoices.v1.IngestDirectoryResponse.results:type_name -> invoices.v1.IngestResponse
	1,  // 4: invoices.v1.InvoicesService.ExtractInvoice:input_type -> invoices.v1.ExtractInvoiceRequest
	3,  // 5: invoices.v1.InvoicesService.GetInvoice:input_type -> invoices.v1.GetInvoiceRequest
	5,  // 6: invoices.v1.InvoicesService.ListInvoices:input_type -> invoices.v1.ListInvoicesRequest
	7,  // 7: invoices.v1.ExportService.ExportInvoices:input_type -> invoices.v1.ExportInvoicesRequest
	9,  // 8: invoices.v1.IngestionService.IngestFile:input_type -> invoices.v1.IngestFileRequest
	11, // 9: invoices.v1.IngestionService.IngestDirectory:input_type -> invoices.v1.IngestDirectoryRequest
	2,  // 10: invoices.v1.InvoicesService.ExtractInvoice:output_type -> invoices.v1.ExtractInvoiceResponse
	4,  // 11: invoices.v1.InvoicesService.GetInvoice:output_type -> invoices.v1.GetInvoiceResponse
	6,  // 12: invoices.v1.InvoicesService.ListInvoices:output_type -> invoices.v1.ListInvoicesResponse
	8,  // 13: invoices.v1.ExportService.ExportInvoices:output_type -> invoices.v1.ExportInvoicesResponse
	10, // 14: invoices.v1.IngestionService.IngestFile:output_type -> invoices.v1.IngestResponse
	12, // 15: invoices.v1.IngestionService.IngestDirectory:output_type -> invoices.v1.IngestDirectoryResponse
	10, // [10:16] is the sub-list for method output_type
	4,  // [4:10] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_invoices_v1_invoices_proto_init() }
func file_invoices_v1_invoices_proto_init() {
	if File_invoices_v1_invoices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}
