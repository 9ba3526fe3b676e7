package model

// 输入表头（上传的配送清单，按表头名称精确匹配）
const (
	InputOrderNo         = "주문번호"
	InputOption          = "등록옵션명"
	InputQuantity        = "구매수(수량)"
	InputRecipientName   = "수취인이름"
	InputPostalCode      = "우편번호"
	InputAddress         = "수취인 주소"
	InputPhone           = "수취인전화번호"
	InputDeliveryMessage = "배송메세지"
	InputBuyerName       = "구매자"
)

// ColumnKind 输出列的取值方式
type ColumnKind int

const (
	ColumnCopy       ColumnKind = iota // 原样复制输入列
	ColumnNormalized                   // 输入列经选项规范化
	ColumnQuantity                     // 输入列转换为整数数量
	ColumnConstant                     // 固定常量
)

// OutputColumn 输出列映射规则
type OutputColumn struct {
	Header   string
	Kind     ColumnKind
	Source   string // 输入表头（ColumnConstant 时为空）
	Constant int
}

// OrderColumns 返回发注书的输出列定义
// 电话→电话+手机、订单号→订单号+商品编码 属于业务上的有意重复，不要合并
func OrderColumns(p Profile) []OutputColumn {
	columns := []OutputColumn{
		{Header: "주문번호", Kind: ColumnCopy, Source: InputOrderNo},
		{Header: "주문상품명", Kind: ColumnNormalized, Source: InputOption},
		{Header: "상품모델", Kind: ColumnNormalized, Source: InputOption},
		{Header: "수량", Kind: ColumnQuantity, Source: InputQuantity},
		{Header: "수취인명", Kind: ColumnCopy, Source: InputRecipientName},
		{Header: "수취인 우편번호", Kind: ColumnCopy, Source: InputPostalCode},
		{Header: "수취인 주소", Kind: ColumnCopy, Source: InputAddress},
		{Header: "수취인 전화번호", Kind: ColumnCopy, Source: InputPhone},
		{Header: "수취인 이동통신", Kind: ColumnCopy, Source: InputPhone},
		{Header: "배송메시지", Kind: ColumnCopy, Source: InputDeliveryMessage},
		{Header: "상품코드", Kind: ColumnCopy, Source: InputOrderNo},
		{Header: "주문자명", Kind: ColumnCopy, Source: InputBuyerName},
	}
	if p.UnitColumns {
		columns = append(columns,
			OutputColumn{Header: "박스단위", Kind: ColumnConstant, Constant: p.BoxUnit},
			OutputColumn{Header: "부피단위", Kind: ColumnConstant, Constant: p.VolumeUnit},
		)
	}
	return columns
}

// Headers 提取列定义中的表头
func Headers(columns []OutputColumn) []string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
	}
	return headers
}

// OrderLine 一条输出发注行
type OrderLine struct {
	RowNum   int           // 输入表中的行号（1 起，含表头）
	Label    string        // 规范化后的商品标签（상품모델）
	Quantity int           // 购买数量
	Values   []interface{} // 按输出列顺序排列的单元格值
}
