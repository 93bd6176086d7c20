// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: expense/v1/expense.proto

package expensev1

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

type IngestDocumentRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	// Optional; the organization's system user is used when empty.
	UserId   string `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename string `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	// OCR text of the receipt or invoice.
	Text string `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	// Optional original document bytes, saved to blob storage when configured.
	RawDocument []byte `protobuf:"bytes,5,opt,name=raw_document,json=rawDocument,proto3" json:"raw_document,omitempty"`
	Description string `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	// "expense" (default) or "income".
	TxType        string `protobuf:"bytes,7,opt,name=tx_type,json=txType,proto3" json:"tx_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDocumentRequest) Reset() {
	*x = IngestDocumentRequest{}
	mi := &file_expense_v1_expense_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentRequest) ProtoMessage() {}

func (x *IngestDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentRequest.ProtoReflect.Descriptor instead.
func (*IngestDocumentRequest) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{0}
}

func (x *IngestDocumentRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *IngestDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *IngestDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *IngestDocumentRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *IngestDocumentRequest) GetRawDocument() []byte {
	if x != nil {
		return x.RawDocument
	}
	return nil
}

func (x *IngestDocumentRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *IngestDocumentRequest) GetTxType() string {
	if x != nil {
		return x.TxType
	}
	return ""
}

type IngestDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transaction   *Transaction           `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	DocumentUrl   string                 `protobuf:"bytes,3,opt,name=document_url,json=documentUrl,proto3" json:"document_url,omitempty"`
	Fields        *ParsedFields          `protobuf:"bytes,4,opt,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDocumentResponse) Reset() {
	*x = IngestDocumentResponse{}
	mi := &file_expense_v1_expense_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentResponse) ProtoMessage() {}

func (x *IngestDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentResponse.ProtoReflect.Descriptor instead.
func (*IngestDocumentResponse) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{1}
}

func (x *IngestDocumentResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

func (x *IngestDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestDocumentResponse) GetDocumentUrl() string {
	if x != nil {
		return x.DocumentUrl
	}
	return ""
}

func (x *IngestDocumentResponse) GetFields() *ParsedFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

type ParsedFields struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        string                 `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,2,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD, empty when not found
	InvoiceNumber string                 `protobuf:"bytes,3,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	TotalAmount   float64                `protobuf:"fixed64,4,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	Currency      string                 `protobuf:"bytes,5,opt,name=currency,proto3" json:"currency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParsedFields) Reset() {
	*x = ParsedFields{}
	mi := &file_expense_v1_expense_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsedFields) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsedFields) ProtoMessage() {}

func (x *ParsedFields) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsedFields.ProtoReflect.Descriptor instead.
func (*ParsedFields) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{2}
}

func (x *ParsedFields) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *ParsedFields) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *ParsedFields) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *ParsedFields) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *ParsedFields) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

type Transaction struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OrganizationId string                 `protobuf:"bytes,2,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	Vendor         string                 `protobuf:"bytes,3,opt,name=vendor,proto3" json:"vendor,omitempty"`
	Category       string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Description    string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Amount         float64                `protobuf:"fixed64,6,opt,name=amount,proto3" json:"amount,omitempty"`
	Currency       string                 `protobuf:"bytes,7,opt,name=currency,proto3" json:"currency,omitempty"`
	InvoiceDate    string                 `protobuf:"bytes,8,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD, empty when none was parsed
	TxType         string                 `protobuf:"bytes,9,opt,name=tx_type,json=txType,proto3" json:"tx_type,omitempty"`
	EffectiveDate  string                 `protobuf:"bytes,10,opt,name=effective_date,json=effectiveDate,proto3" json:"effective_date,omitempty"` // invoice date, else creation date
	CreatedAt      string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`             // RFC 3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_expense_v1_expense_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{3}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *Transaction) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *Transaction) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Transaction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Transaction) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Transaction) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Transaction) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Transaction) GetTxType() string {
	if x != nil {
		return x.TxType
	}
	return ""
}

func (x *Transaction) GetEffectiveDate() string {
	if x != nil {
		return x.EffectiveDate
	}
	return ""
}

func (x *Transaction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListTransactionsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	// Case-insensitive substring filters.
	Category string `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Vendor   string `protobuf:"bytes,3,opt,name=vendor,proto3" json:"vendor,omitempty"`
	// Clamped to [1, 100]; 0 means 50.
	Limit  int32 `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset int32 `protobuf:"varint,5,opt,name=offset,proto3" json:"offset,omitempty"`
	// Inclusive effective-date bounds, YYYY-MM-DD; empty means unbounded.
	FromDate      string `protobuf:"bytes,6,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,7,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsRequest) Reset() {
	*x = ListTransactionsRequest{}
	mi := &file_expense_v1_expense_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsRequest) ProtoMessage() {}

func (x *ListTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{4}
}

func (x *ListTransactionsRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *ListTransactionsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListTransactionsRequest) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *ListTransactionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListTransactionsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *ListTransactionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListTransactionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsResponse) Reset() {
	*x = ListTransactionsResponse{}
	mi := &file_expense_v1_expense_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsResponse) ProtoMessage() {}

func (x *ListTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{5}
}

func (x *ListTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

func (x *ListTransactionsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetSummaryRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetSummaryRequest) Reset() {
	*x = GetSummaryRequest{}
	mi := &file_expense_v1_expense_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryRequest) ProtoMessage() {}

func (x *GetSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetSummaryRequest) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{6}
}

func (x *GetSummaryRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

type CategoryTotal struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Total         float64                `protobuf:"fixed64,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryTotal) Reset() {
	*x = CategoryTotal{}
	mi := &file_expense_v1_expense_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryTotal) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryTotal) ProtoMessage() {}

func (x *CategoryTotal) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryTotal.ProtoReflect.Descriptor instead.
func (*CategoryTotal) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{7}
}

func (x *CategoryTotal) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategoryTotal) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetSummaryResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	TotalExpense       float64                `protobuf:"fixed64,1,opt,name=total_expense,json=totalExpense,proto3" json:"total_expense,omitempty"`
	ReceiptCount       int32                  `protobuf:"varint,2,opt,name=receipt_count,json=receiptCount,proto3" json:"receipt_count,omitempty"`
	AvgPerReceipt      float64                `protobuf:"fixed64,3,opt,name=avg_per_receipt,json=avgPerReceipt,proto3" json:"avg_per_receipt,omitempty"`
	TopCategory        *CategoryTotal         `protobuf:"bytes,4,opt,name=top_category,json=topCategory,proto3" json:"top_category,omitempty"`
	SpendingByCategory []*CategoryTotal       `protobuf:"bytes,5,rep,name=spending_by_category,json=spendingByCategory,proto3" json:"spending_by_category,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetSummaryResponse) Reset() {
	*x = GetSummaryResponse{}
	mi := &file_expense_v1_expense_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryResponse) ProtoMessage() {}

func (x *GetSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetSummaryResponse) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{8}
}

func (x *GetSummaryResponse) GetTotalExpense() float64 {
	if x != nil {
		return x.TotalExpense
	}
	return 0
}

func (x *GetSummaryResponse) GetReceiptCount() int32 {
	if x != nil {
		return x.ReceiptCount
	}
	return 0
}

func (x *GetSummaryResponse) GetAvgPerReceipt() float64 {
	if x != nil {
		return x.AvgPerReceipt
	}
	return 0
}

func (x *GetSummaryResponse) GetTopCategory() *CategoryTotal {
	if x != nil {
		return x.TopCategory
	}
	return nil
}

func (x *GetSummaryResponse) GetSpendingByCategory() []*CategoryTotal {
	if x != nil {
		return x.SpendingByCategory
	}
	return nil
}

type GetMonthlyReportRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	// Accepted range is 2020..2030.
	Year          int32 `protobuf:"varint,2,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMonthlyReportRequest) Reset() {
	*x = GetMonthlyReportRequest{}
	mi := &file_expense_v1_expense_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMonthlyReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMonthlyReportRequest) ProtoMessage() {}

func (x *GetMonthlyReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMonthlyReportRequest.ProtoReflect.Descriptor instead.
func (*GetMonthlyReportRequest) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{9}
}

func (x *GetMonthlyReportRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *GetMonthlyReportRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type MonthlyReportRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Month         string                 `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"` // YYYY-MM
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Total         float64                `protobuf:"fixed64,3,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MonthlyReportRow) Reset() {
	*x = MonthlyReportRow{}
	mi := &file_expense_v1_expense_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MonthlyReportRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MonthlyReportRow) ProtoMessage() {}

func (x *MonthlyReportRow) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MonthlyReportRow.ProtoReflect.Descriptor instead.
func (*MonthlyReportRow) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{10}
}

func (x *MonthlyReportRow) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *MonthlyReportRow) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *MonthlyReportRow) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetMonthlyReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          []*MonthlyReportRow    `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMonthlyReportResponse) Reset() {
	*x = GetMonthlyReportResponse{}
	mi := &file_expense_v1_expense_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMonthlyReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMonthlyReportResponse) ProtoMessage() {}

func (x *GetMonthlyReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMonthlyReportResponse.ProtoReflect.Descriptor instead.
func (*GetMonthlyReportResponse) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{11}
}

func (x *GetMonthlyReportResponse) GetRows() []*MonthlyReportRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

type ExportMonthlyReportRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	Year           int32                  `protobuf:"varint,2,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportMonthlyReportRequest) Reset() {
	*x = ExportMonthlyReportRequest{}
	mi := &file_expense_v1_expense_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMonthlyReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMonthlyReportRequest) ProtoMessage() {}

func (x *ExportMonthlyReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMonthlyReportRequest.ProtoReflect.Descriptor instead.
func (*ExportMonthlyReportRequest) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{12}
}

func (x *ExportMonthlyReportRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *ExportMonthlyReportRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ExportMonthlyReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMonthlyReportResponse) Reset() {
	*x = ExportMonthlyReportResponse{}
	mi := &file_expense_v1_expense_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMonthlyReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMonthlyReportResponse) ProtoMessage() {}

func (x *ExportMonthlyReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMonthlyReportResponse.ProtoReflect.Descriptor instead.
func (*ExportMonthlyReportResponse) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{13}
}

func (x *ExportMonthlyReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportMonthlyReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type GetForecastRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	// Bypass the cached forecast and recompute.
	Refresh       bool `protobuf:"varint,2,opt,name=refresh,proto3" json:"refresh,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetForecastRequest) Reset() {
	*x = GetForecastRequest{}
	mi := &file_expense_v1_expense_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetForecastRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetForecastRequest) ProtoMessage() {}

func (x *GetForecastRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetForecastRequest.ProtoReflect.Descriptor instead.
func (*GetForecastRequest) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{14}
}

func (x *GetForecastRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *GetForecastRequest) GetRefresh() bool {
	if x != nil {
		return x.Refresh
	}
	return false
}

type ForecastPoint struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Week          string                 `protobuf:"bytes,1,opt,name=week,proto3" json:"week,omitempty"` // YYYY-MM-DD, Monday of the week
	Net           float64                `protobuf:"fixed64,2,opt,name=net,proto3" json:"net,omitempty"`
	HasNet        bool                   `protobuf:"varint,3,opt,name=has_net,json=hasNet,proto3" json:"has_net,omitempty"`
	Forecast      float64                `protobuf:"fixed64,4,opt,name=forecast,proto3" json:"forecast,omitempty"`
	HasForecast   bool                   `protobuf:"varint,5,opt,name=has_forecast,json=hasForecast,proto3" json:"has_forecast,omitempty"`
	IsForecast    bool                   `protobuf:"varint,6,opt,name=is_forecast,json=isForecast,proto3" json:"is_forecast,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ForecastPoint) Reset() {
	*x = ForecastPoint{}
	mi := &file_expense_v1_expense_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForecastPoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForecastPoint) ProtoMessage() {}

func (x *ForecastPoint) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForecastPoint.ProtoReflect.Descriptor instead.
func (*ForecastPoint) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{15}
}

func (x *ForecastPoint) GetWeek() string {
	if x != nil {
		return x.Week
	}
	return ""
}

func (x *ForecastPoint) GetNet() float64 {
	if x != nil {
		return x.Net
	}
	return 0
}

func (x *ForecastPoint) GetHasNet() bool {
	if x != nil {
		return x.HasNet
	}
	return false
}

func (x *ForecastPoint) GetForecast() float64 {
	if x != nil {
		return x.Forecast
	}
	return 0
}

func (x *ForecastPoint) GetHasForecast() bool {
	if x != nil {
		return x.HasForecast
	}
	return false
}

func (x *ForecastPoint) GetIsForecast() bool {
	if x != nil {
		return x.IsForecast
	}
	return false
}

type GetForecastResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Series []*ForecastPoint       `protobuf:"bytes,1,rep,name=series,proto3" json:"series,omitempty"`
	// "ok" or "insufficient_data".
	Status        string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ComputedAt    string `protobuf:"bytes,3,opt,name=computed_at,json=computedAt,proto3" json:"computed_at,omitempty"` // RFC 3339
	FromCache     bool   `protobuf:"varint,4,opt,name=from_cache,json=fromCache,proto3" json:"from_cache,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetForecastResponse) Reset() {
	*x = GetForecastResponse{}
	mi := &file_expense_v1_expense_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetForecastResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetForecastResponse) ProtoMessage() {}

func (x *GetForecastResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetForecastResponse.ProtoReflect.Descriptor instead.
func (*GetForecastResponse) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{16}
}

func (x *GetForecastResponse) GetSeries() []*ForecastPoint {
	if x != nil {
		return x.Series
	}
	return nil
}

func (x *GetForecastResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetForecastResponse) GetComputedAt() string {
	if x != nil {
		return x.ComputedAt
	}
	return ""
}

func (x *GetForecastResponse) GetFromCache() bool {
	if x != nil {
		return x.FromCache
	}
	return false
}

type GenerateInsightsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	Question       string                 `protobuf:"bytes,2,opt,name=question,proto3" json:"question,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GenerateInsightsRequest) Reset() {
	*x = GenerateInsightsRequest{}
	mi := &file_expense_v1_expense_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateInsightsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateInsightsRequest) ProtoMessage() {}

func (x *GenerateInsightsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateInsightsRequest.ProtoReflect.Descriptor instead.
func (*GenerateInsightsRequest) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{17}
}

func (x *GenerateInsightsRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *GenerateInsightsRequest) GetQuestion() string {
	if x != nil {
		return x.Question
	}
	return ""
}

type BudgetRecommendation struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Category          string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Suggestion        string                 `protobuf:"bytes,2,opt,name=suggestion,proto3" json:"suggestion,omitempty"`
	EstMonthlySavings float64                `protobuf:"fixed64,3,opt,name=est_monthly_savings,json=estMonthlySavings,proto3" json:"est_monthly_savings,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *BudgetRecommendation) Reset() {
	*x = BudgetRecommendation{}
	mi := &file_expense_v1_expense_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BudgetRecommendation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BudgetRecommendation) ProtoMessage() {}

func (x *BudgetRecommendation) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BudgetRecommendation.ProtoReflect.Descriptor instead.
func (*BudgetRecommendation) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{18}
}

func (x *BudgetRecommendation) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *BudgetRecommendation) GetSuggestion() string {
	if x != nil {
		return x.Suggestion
	}
	return ""
}

func (x *BudgetRecommendation) GetEstMonthlySavings() float64 {
	if x != nil {
		return x.EstMonthlySavings
	}
	return 0
}

type TaxPreparationItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          string                 `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	WhyItMatters  string                 `protobuf:"bytes,2,opt,name=why_it_matters,json=whyItMatters,proto3" json:"why_it_matters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaxPreparationItem) Reset() {
	*x = TaxPreparationItem{}
	mi := &file_expense_v1_expense_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaxPreparationItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaxPreparationItem) ProtoMessage() {}

func (x *TaxPreparationItem) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaxPreparationItem.ProtoReflect.Descriptor instead.
func (*TaxPreparationItem) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{19}
}

func (x *TaxPreparationItem) GetItem() string {
	if x != nil {
		return x.Item
	}
	return ""
}

func (x *TaxPreparationItem) GetWhyItMatters() string {
	if x != nil {
		return x.WhyItMatters
	}
	return ""
}

type RiskItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Risk          string                 `protobuf:"bytes,1,opt,name=risk,proto3" json:"risk,omitempty"`
	WatchMetric   string                 `protobuf:"bytes,2,opt,name=watch_metric,json=watchMetric,proto3" json:"watch_metric,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RiskItem) Reset() {
	*x = RiskItem{}
	mi := &file_expense_v1_expense_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RiskItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RiskItem) ProtoMessage() {}

func (x *RiskItem) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RiskItem.ProtoReflect.Descriptor instead.
func (*RiskItem) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{20}
}

func (x *RiskItem) GetRisk() string {
	if x != nil {
		return x.Risk
	}
	return ""
}

func (x *RiskItem) GetWatchMetric() string {
	if x != nil {
		return x.WatchMetric
	}
	return ""
}

type GenerateInsightsResponse struct {
	state                 protoimpl.MessageState  `protogen:"open.v1"`
	Summary               string                  `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	BudgetRecommendations []*BudgetRecommendation `protobuf:"bytes,2,rep,name=budget_recommendations,json=budgetRecommendations,proto3" json:"budget_recommendations,omitempty"`
	TaxPreparation        []*TaxPreparationItem   `protobuf:"bytes,3,rep,name=tax_preparation,json=taxPreparation,proto3" json:"tax_preparation,omitempty"`
	Risks                 []*RiskItem             `protobuf:"bytes,4,rep,name=risks,proto3" json:"risks,omitempty"`
	ModelUsed             string                  `protobuf:"bytes,5,opt,name=model_used,json=modelUsed,proto3" json:"model_used,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *GenerateInsightsResponse) Reset() {
	*x = GenerateInsightsResponse{}
	mi := &file_expense_v1_expense_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateInsightsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateInsightsResponse) ProtoMessage() {}

func (x *GenerateInsightsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expense_v1_expense_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateInsightsResponse.ProtoReflect.Descriptor instead.
func (*GenerateInsightsResponse) Descriptor() ([]byte, []int) {
	return file_expense_v1_expense_proto_rawDescGZIP(), []int{21}
}

func (x *GenerateInsightsResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *GenerateInsightsResponse) GetBudgetRecommendations() []*BudgetRecommendation {
	if x != nil {
		return x.BudgetRecommendations
	}
	return nil
}

func (x *GenerateInsightsResponse) GetTaxPreparation() []*TaxPreparationItem {
	if x != nil {
		return x.TaxPreparation
	}
	return nil
}

func (x *GenerateInsightsResponse) GetRisks() []*RiskItem {
	if x != nil {
		return x.Risks
	}
	return nil
}

func (x *GenerateInsightsResponse) GetModelUsed() string {
	if x != nil {
		return x.ModelUsed
	}
	return ""
}

var File_expense_v1_expense_proto protoreflect.FileDescriptor

const file_expense_v1_expense_proto_rawDesc = "" +
	"\n" +
	"\x18expense/v1/expense.proto\x12\n" +
	"expense.v1\"\xe7\x01\n" +
	"\x15IngestDocumentRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12!\n" +
	"\fraw_document\x18\x05 \x01(\fR\vrawDocument\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12\x17\n" +
	"\atx_type\x18\a \x01(\tR\x06txType\"\xc9\x01\n" +
	"\x16IngestDocumentResponse\x129\n" +
	"\vtransaction\x18\x01 \x01(\v2\x17.expense.v1.TransactionR\vtransaction\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12!\n" +
	"\fdocument_url\x18\x03 \x01(\tR\vdocumentUrl\x120\n" +
	"\x06fields\x18\x04 \x01(\v2\x18.expense.v1.ParsedFieldsR\x06fields\"\xaf\x01\n" +
	"\fParsedFields\x12\x16\n" +
	"\x06vendor\x18\x01 \x01(\tR\x06vendor\x12!\n" +
	"\finvoice_date\x18\x02 \x01(\tR\vinvoiceDate\x12%\n" +
	"\x0einvoice_number\x18\x03 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\ftotal_amount\x18\x04 \x01(\x01R\vtotalAmount\x12\x1a\n" +
	"\bcurrency\x18\x05 \x01(\tR\bcurrency\"\xd2\x02\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0forganization_id\x18\x02 \x01(\tR\x0eorganizationId\x12\x16\n" +
	"\x06vendor\x18\x03 \x01(\tR\x06vendor\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\x16\n" +
	"\x06amount\x18\x06 \x01(\x01R\x06amount\x12\x1a\n" +
	"\bcurrency\x18\a \x01(\tR\bcurrency\x12!\n" +
	"\finvoice_date\x18\b \x01(\tR\vinvoiceDate\x12\x17\n" +
	"\atx_type\x18\t \x01(\tR\x06txType\x12%\n" +
	"\x0eeffective_date\x18\n" +
	" \x01(\tR\reffectiveDate\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\"\xda\x01\n" +
	"\x17ListTransactionsRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x16\n" +
	"\x06vendor\x18\x03 \x01(\tR\x06vendor\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x05 \x01(\x05R\x06offset\x12\x1b\n" +
	"\tfrom_date\x18\x06 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\a \x01(\tR\x06toDate\"m\n" +
	"\x18ListTransactionsResponse\x12;\n" +
	"\ftransactions\x18\x01 \x03(\v2\x17.expense.v1.TransactionR\ftransactions\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"<\n" +
	"\x11GetSummaryRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\"A\n" +
	"\rCategoryTotal\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x01R\x05total\"\x91\x02\n" +
	"\x12GetSummaryResponse\x12#\n" +
	"\rtotal_expense\x18\x01 \x01(\x01R\ftotalExpense\x12#\n" +
	"\rreceipt_count\x18\x02 \x01(\x05R\freceiptCount\x12&\n" +
	"\x0favg_per_receipt\x18\x03 \x01(\x01R\ravgPerReceipt\x12<\n" +
	"\ftop_category\x18\x04 \x01(\v2\x19.expense.v1.CategoryTotalR\vtopCategory\x12K\n" +
	"\x14spending_by_category\x18\x05 \x03(\v2\x19.expense.v1.CategoryTotalR\x12spendingByCategory\"V\n" +
	"\x17GetMonthlyReportRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x12\n" +
	"\x04year\x18\x02 \x01(\x05R\x04year\"Z\n" +
	"\x10MonthlyReportRow\x12\x14\n" +
	"\x05month\x18\x01 \x01(\tR\x05month\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x14\n" +
	"\x05total\x18\x03 \x01(\x01R\x05total\"L\n" +
	"\x18GetMonthlyReportResponse\x120\n" +
	"\x04rows\x18\x01 \x03(\v2\x1c.expense.v1.MonthlyReportRowR\x04rows\"Y\n" +
	"\x1aExportMonthlyReportRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x12\n" +
	"\x04year\x18\x02 \x01(\x05R\x04year\"M\n" +
	"\x1bExportMonthlyReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"W\n" +
	"\x12GetForecastRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x18\n" +
	"\arefresh\x18\x02 \x01(\bR\arefresh\"\xae\x01\n" +
	"\rForecastPoint\x12\x12\n" +
	"\x04week\x18\x01 \x01(\tR\x04week\x12\x10\n" +
	"\x03net\x18\x02 \x01(\x01R\x03net\x12\x17\n" +
	"\ahas_net\x18\x03 \x01(\bR\x06hasNet\x12\x1a\n" +
	"\bforecast\x18\x04 \x01(\x01R\bforecast\x12!\n" +
	"\fhas_forecast\x18\x05 \x01(\bR\vhasForecast\x12\x1f\n" +
	"\vis_forecast\x18\x06 \x01(\bR\n" +
	"isForecast\"\xa0\x01\n" +
	"\x13GetForecastResponse\x121\n" +
	"\x06series\x18\x01 \x03(\v2\x19.expense.v1.ForecastPointR\x06series\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1f\n" +
	"\vcomputed_at\x18\x03 \x01(\tR\n" +
	"computedAt\x12\x1d\n" +
	"\n" +
	"from_cache\x18\x04 \x01(\bR\tfromCache\"^\n" +
	"\x17GenerateInsightsRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x1a\n" +
	"\bquestion\x18\x02 \x01(\tR\bquestion\"\x82\x01\n" +
	"\x14BudgetRecommendation\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"suggestion\x18\x02 \x01(\tR\n" +
	"suggestion\x12.\n" +
	"\x13est_monthly_savings\x18\x03 \x01(\x01R\x11estMonthlySavings\"N\n" +
	"\x12TaxPreparationItem\x12\x12\n" +
	"\x04item\x18\x01 \x01(\tR\x04item\x12$\n" +
	"\x0ewhy_it_matters\x18\x02 \x01(\tR\fwhyItMatters\"A\n" +
	"\bRiskItem\x12\x12\n" +
	"\x04risk\x18\x01 \x01(\tR\x04risk\x12!\n" +
	"\fwatch_metric\x18\x02 \x01(\tR\vwatchMetric\"\xa1\x02\n" +
	"\x18GenerateInsightsResponse\x12\x18\n" +
	"\asummary\x18\x01 \x01(\tR\asummary\x12W\n" +
	"\x16budget_recommendations\x18\x02 \x03(\v2 .expense.v1.BudgetRecommendationR\x15budgetRecommendations\x12G\n" +
	"\x0ftax_preparation\x18\x03 \x03(\v2\x1e.expense.v1.TaxPreparationItemR\x0etaxPreparation\x12*\n" +
	"\x05risks\x18\x04 \x03(\v2\x14.expense.v1.RiskItemR\x05risks\x12\x1d\n" +
	"\n" +
	"model_used\x18\x05 \x01(\tR\tmodelUsed2k\n" +
	"\x10IngestionService\x12W\n" +
	"\x0eIngestDocument\x12!.expense.v1.IngestDocumentRequest\x1a\".expense.v1.IngestDocumentResponse2\x88\x03\n" +
	"\x13TransactionsService\x12]\n" +
	"\x10ListTransactions\x12#.expense.v1.ListTransactionsRequest\x1a$.expense.v1.ListTransactionsResponse\x12K\n" +
	"\n" +
	"GetSummary\x12\x1d.expense.v1.GetSummaryRequest\x1a\x1e.expense.v1.GetSummaryResponse\x12]\n" +
	"\x10GetMonthlyReport\x12#.expense.v1.GetMonthlyReportRequest\x1a$.expense.v1.GetMonthlyReportResponse\x12f\n" +
	"\x13ExportMonthlyReport\x12&.expense.v1.ExportMonthlyReportRequest\x1a'.expense.v1.ExportMonthlyReportResponse2\xc0\x01\n" +
	"\x0fForecastService\x12N\n" +
	"\vGetForecast\x12\x1e.expense.v1.GetForecastRequest\x1a\x1f.expense.v1.GetForecastResponse\x12]\n" +
	"\x10GenerateInsights\x12#.expense.v1.GenerateInsightsRequest\x1a$.expense.v1.GenerateInsightsResponseBEZCgithub.com/hackybara/expense-tracker/gen/proto/expense/v1;expensev1b\x06proto3"

var (
	file_expense_v1_expense_proto_rawDescOnce sync.Once
	file_expense_v1_expense_proto_rawDescData []byte
)

func file_expense_v1_expense_proto_rawDescGZIP() []byte {
	file_expense_v1_expense_proto_rawDescOnce.Do(func() {
		file_expense_v1_expense_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_expense_v1_expense_proto_rawDesc), len(file_expense_v1_expense_proto_rawDesc)))
	})
	return file_expense_v1_expense_proto_rawDescData
}

var file_expense_v1_expense_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_expense_v1_expense_proto_goTypes = []any{
	(*IngestDocumentRequest)(nil),       // 0: expense.v1.IngestDocumentRequest
	(*IngestDocumentResponse)(nil),      // 1: expense.v1.IngestDocumentResponse
	(*ParsedFields)(nil),                // 2: expense.v1.ParsedFields
	(*Transaction)(nil),                 // 3: expense.v1.Transaction
	(*ListTransactionsRequest)(nil),     // 4: expense.v1.ListTransactionsRequest
	(*ListTransactionsResponse)(nil),    // 5: expense.v1.ListTransactionsResponse
	(*GetSummaryRequest)(nil),           // 6: expense.v1.GetSummaryRequest
	(*CategoryTotal)(nil),               // 7: expense.v1.CategoryTotal
	(*GetSummaryResponse)(nil),          // 8: expense.v1.GetSummaryResponse
	(*GetMonthlyReportRequest)(nil),     // 9: expense.v1.GetMonthlyReportRequest
	(*MonthlyReportRow)(nil),            // 10: expense.v1.MonthlyReportRow
	(*GetMonthlyReportResponse)(nil),    // 11: expense.v1.GetMonthlyReportResponse
	(*ExportMonthlyReportRequest)(nil),  // 12: expense.v1.ExportMonthlyReportRequest
	(*ExportMonthlyReportResponse)(nil), // 13: expense.v1.ExportMonthlyReportResponse
	(*GetForecastRequest)(nil),          // 14: expense.v1.GetForecastRequest
	(*ForecastPoint)(nil),               // 15: expense.v1.ForecastPoint
	(*GetForecastResponse)(nil),         // 16: expense.v1.GetForecastResponse
	(*GenerateInsightsRequest)(nil),     // 17: expense.v1.GenerateInsightsRequest
	(*BudgetRecommendation)(nil),        // 18: expense.v1.BudgetRecommendation
	(*TaxPreparationItem)(nil),          // 19: expense.v1.TaxPreparationItem
	(*RiskItem)(nil),                    // 20: expense.v1.RiskItem
	(*GenerateInsightsResponse)(nil),    // 21: expense.v1.GenerateInsightsResponse
}
var file_expense_v1_expense_proto_depIdxs = []int32{
	3,  // 0: expense.v1.IngestDocumentResponse.transaction:type_name -> expense.v1.Transaction
	2,  // 1: expense.v1.IngestDocumentResponse.fields:type_name -> expense.v1.ParsedFields
	3,  // 2: expense.v1.ListTransactionsResponse.transactions:type_name -> expense.v1.Transaction
	7,  // 3: expense.v1.GetSummaryResponse.top_category:type_name -> expense.v1.CategoryTotal
	7,  // 4: expense.v1.GetSummaryResponse.spending_by_category:type_name -> expense.v1.CategoryTotal
	10, // 5: expense.v1.GetMonthlyReportResponse.rows:type_name -> expense.v1.MonthlyReportRow
	15, // 6: expense.v1.GetForecastResponse.series:type_name -> expense.v1.ForecastPoint
	18, // 7: expense.v1.GenerateInsightsResponse.budget_recommendations:type_name -> expense.v1.BudgetRecommendation
	19, // 8: expense.v1.GenerateInsightsResponse.tax_preparation:type_name -> expense.v1.TaxPreparationItem
	20, // 9: expense.v1.GenerateInsightsResponse.risks:type_name -> expense.v1.RiskItem
	0,  // 10: expense.v1.IngestionService.IngestDocument:input_type -> expense.v1.IngestDocumentRequest
	4,  // 11: expense.v1.TransactionsService.ListTransactions:input_type -> expense.v1.ListTransactionsRequest
	6,  // 12: expense.v1.TransactionsService.GetSummary:input_type -> expense.v1.GetSummaryRequest
	9,  // 13: expense.v1.TransactionsService.GetMonthlyReport:input_type -> expense.v1.GetMonthlyReportRequest
	12, // 14: expense.v1.TransactionsService.ExportMonthlyReport:input_type -> expense.v1.ExportMonthlyReportRequest
	14, // 15: expense.v1.ForecastService.GetForecast:input_type -> expense.v1.GetForecastRequest
	17, // 16: expense.v1.ForecastService.GenerateInsights:input_type -> expense.v1.GenerateInsightsRequest
	1,  // 17: expense.v1.IngestionService.IngestDocument:output_type -> expense.v1.IngestDocumentResponse
	5,  // 18: expense.v1.TransactionsService.ListTransactions:output_type -> expense.v1.ListTransactionsResponse
	8,  // 19: expense.v1.TransactionsService.GetSummary:output_type -> expense.v1.GetSummaryResponse
	11, // 20: expense.v1.TransactionsService.GetMonthlyReport:output_type -> expense.v1.GetMonthlyReportResponse
	13, // 21: expense.v1.TransactionsService.ExportMonthlyReport:output_type -> expense.v1.ExportMonthlyReportResponse
	16, // 22: expense.v1.ForecastService.GetForecast:output_type -> expense.v1.GetForecastResponse
	21, // 23: expense.v1.ForecastService.GenerateInsights:output_type -> expense.v1.GenerateInsightsResponse
	17, // [17:24] is the sub-list for method output_type
	10, // [10:17] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_expense_v1_expense_proto_init() }
func file_expense_v1_expense_proto_init() {
	if File_expense_v1_expense_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_expense_v1_expense_proto_rawDesc), len(file_expense_v1_expense_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_expense_v1_expense_proto_goTypes,
		DependencyIndexes: file_expense_v1_expense_proto_depIdxs,
		MessageInfos:      file_expense_v1_expense_proto_msgTypes,
	}.Build()
	File_expense_v1_expense_proto = out.File
	file_expense_v1_expense_proto_goTypes = nil
	file_expense_v1_expense_proto_depIdxs = nil
}
