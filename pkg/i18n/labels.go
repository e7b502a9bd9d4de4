package i18n

// LabelKey names one display label on the invoice. The set of keys is
// closed; both dictionaries define every key (a tested invariant).
type LabelKey string

const (
	KeyInvoiceTitle  LabelKey = "invoiceTitle"
	KeyInvoiceNumber LabelKey = "invoiceNumber"
	KeyDate          LabelKey = "date"
	KeyBillTo        LabelKey = "billTo"
	KeyEmail         LabelKey = "email"
	KeyPhone         LabelKey = "phone"
	KeyAddress       LabelKey = "address"
	KeyDescription   LabelKey = "description"
	KeyQuantity      LabelKey = "quantity"
	KeyUnitPrice     LabelKey = "unitPrice"
	KeyLineTotal     LabelKey = "lineTotal"
	KeySubtotal      LabelKey = "subtotal"
	KeyShipping      LabelKey = "shipping"
	KeyTax           LabelKey = "tax"
	KeyDiscount      LabelKey = "discount"
	KeyGrandTotal    LabelKey = "grandTotal"
	KeyPaymentMethod LabelKey = "paymentMethod"
	KeyNotes         LabelKey = "notes"
)

var labels = map[Language]map[LabelKey]string{
	English: {
		KeyInvoiceTitle:  "INVOICE",
		KeyInvoiceNumber: "Invoice No",
		KeyDate:          "Date",
		KeyBillTo:        "Bill To",
		KeyEmail:         "Email",
		KeyPhone:         "Phone",
		KeyAddress:       "Address",
		KeyDescription:   "Description",
		KeyQuantity:      "Qty",
		KeyUnitPrice:     "Unit Price",
		KeyLineTotal:     "Total",
		KeySubtotal:      "Subtotal",
		KeyShipping:      "Shipping",
		KeyTax:           "Tax",
		KeyDiscount:      "Discount",
		KeyGrandTotal:    "Grand Total",
		KeyPaymentMethod: "Payment Method",
		KeyNotes:         "Notes",
	},
	Arabic: {
		KeyInvoiceTitle:  "فاتورة",
		KeyInvoiceNumber: "رقم الفاتورة",
		KeyDate:          "التاريخ",
		KeyBillTo:        "فاتورة إلى",
		KeyEmail:         "البريد الإلكتروني",
		KeyPhone:         "الهاتف",
		KeyAddress:       "العنوان",
		KeyDescription:   "الوصف",
		KeyQuantity:      "الكمية",
		KeyUnitPrice:     "سعر الوحدة",
		KeyLineTotal:     "الإجمالي",
		KeySubtotal:      "المجموع الفرعي",
		KeyShipping:      "الشحن",
		KeyTax:           "الضريبة",
		KeyDiscount:      "الخصم",
		KeyGrandTotal:    "الإجمالي الكلي",
		KeyPaymentMethod: "طريقة الدفع",
		KeyNotes:         "ملاحظات",
	},
}

// Label returns the display string for key in the given language.
// Lookup always succeeds for a valid key and language.
func Label(key LabelKey, lang Language) string {
	return labels[lang][key]
}

// Keys returns the closed set of label keys in a fixed order.
func Keys() []LabelKey {
	return []LabelKey{
		KeyInvoiceTitle, KeyInvoiceNumber, KeyDate, KeyBillTo,
		KeyEmail, KeyPhone, KeyAddress,
		KeyDescription, KeyQuantity, KeyUnitPrice, KeyLineTotal,
		KeySubtotal, KeyShipping, KeyTax, KeyDiscount, KeyGrandTotal,
		KeyPaymentMethod, KeyNotes,
	}
}

// Languages returns the supported languages.
func Languages() []Language {
	return []Language{Arabic, English}
}
